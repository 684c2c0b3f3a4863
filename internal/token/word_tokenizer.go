package token

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
)

// WordTokenizer splits a line on whitespace and breaks each word into tokens.
// Parentheses may be glued to a number, e.g. `((2` or `9))`.
type WordTokenizer struct {
	input []rune
	pos   int
}

func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Tokenize converts the input line into a slice of Tokens.
// Example: Input: `2 * 3 + (4 * 5)`
func (t *WordTokenizer) Tokenize(input string) ([]Token, error) {
	t.input = []rune(input)
	t.pos = 0

	var tokens []Token

	t.skipWhitespace()
	for t.pos < len(t.input) {
		start := t.pos
		word := t.readWord()

		toks, err := splitWord(word, start)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, toks...)
		t.skipWhitespace()
	}

	return tokens, nil
}

func (t *WordTokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
}

func (t *WordTokenizer) readWord() string {
	start := t.pos
	for t.pos < len(t.input) && !unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
	return string(t.input[start:t.pos])
}

// splitWord emits the leading '(' run, the body and the trailing ')' run, in that order.
func splitWord(word string, pos int) ([]Token, error) {
	runes := []rune(word)

	open := 0
	for open < len(runes) && runes[open] == '(' {
		open++
	}
	closeAt := len(runes)
	for closeAt > open && runes[closeAt-1] == ')' {
		closeAt--
	}

	toks := make([]Token, 0, len(runes))
	for i := 0; i < open; i++ {
		toks = append(toks, Token{Type: LPAREN, Pos: pos + i})
	}

	if body := string(runes[open:closeAt]); body != "" {
		tok, err := readBody(body, word, pos+open, open > 0 || closeAt < len(runes))
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}

	for i := closeAt; i < len(runes); i++ {
		toks = append(toks, Token{Type: RPAREN, Pos: pos + i})
	}

	return toks, nil
}

func readBody(body, word string, pos int, glued bool) (Token, error) {
	switch body {
	case "+", "*":
		if glued {
			return Token{}, apperr.NewParse(word, pos, "operator cannot be attached to a parenthesis")
		}
		if body == "+" {
			return Token{Type: ADD, Pos: pos}, nil
		}
		return Token{Type: MUL, Pos: pos}, nil
	}

	if strings.ContainsAny(body, "()") {
		return Token{}, apperr.NewParse(word, pos, "misplaced parenthesis")
	}

	v, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, apperr.NewParse(word, pos, "integer out of range")
		}
		return Token{}, apperr.NewParse(word, pos, "not an integer, operator or parenthesized integer")
	}
	return Token{Type: INT, Value: v, Pos: pos}, nil
}

// Validate checks that parentheses are balanced, using an explicit depth counter.
func (t *WordTokenizer) Validate(tokens []Token) error {
	return Validate(tokens)
}

func Validate(tokens []Token) error {
	var opened []int

	for _, tok := range tokens {
		switch tok.Type {
		case LPAREN:
			opened = append(opened, tok.Pos)
		case RPAREN:
			if len(opened) == 0 {
				return &apperr.UnbalancedParenError{Pos: tok.Pos}
			}
			opened = opened[:len(opened)-1]
		case INT, ADD, MUL:
		default:
			return apperr.NewParse(tok.String(), tok.Pos, "invalid token")
		}
	}

	if len(opened) != 0 {
		return &apperr.UnbalancedParenError{Pos: opened[0], Unclosed: len(opened)}
	}

	return nil
}

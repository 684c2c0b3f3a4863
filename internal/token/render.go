package token

import "strings"

// Render rebuilds canonical source text: single spaces between words,
// parentheses glued to the adjacent operand.
func Render(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && tokens[i-1].Type != LPAREN && tok.Type != RPAREN {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}

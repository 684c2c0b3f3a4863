package token

import "strconv"

type Type int

const (
	INVALID Type = iota
	INT
	ADD
	MUL
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case INT:
		return "INT"
	case ADD:
		return "ADD"
	case MUL:
		return "MUL"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "INVALID"
	}
}

// IsOperator reports whether t is a binary operator.
func (t Type) IsOperator() bool {
	return t == ADD || t == MUL
}

// Symbol returns the source text of an operator or parenthesis.
func (t Type) Symbol() string {
	switch t {
	case ADD:
		return "+"
	case MUL:
		return "*"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	default:
		return ""
	}
}

// Token represents a lexical token. Value is only meaningful for INT,
// Pos is the rune offset of the source word the token came from.
type Token struct {
	Type  Type
	Value int64
	Pos   int
}

func (t Token) String() string {
	if t.Type == INT {
		return strconv.FormatInt(t.Value, 10)
	}
	return t.Type.Symbol()
}

func Int(v int64) Token {
	return Token{Type: INT, Value: v, Pos: -1}
}

func Op(t Type) Token {
	return Token{Type: t, Pos: -1}
}

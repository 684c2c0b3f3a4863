package expr

import (
	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	"github.com/DjordjeVuckovic/ordercalc/internal/token"
)

// matchParen returns the index of the ')' matching the '(' at tokens[open].
func matchParen(tokens []token.Token, open int) (int, error) {
	depth := 0
	for j := open; j < len(tokens); j++ {
		switch tokens[j].Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, &apperr.UnbalancedParenError{Pos: tokens[open].Pos, Unclosed: depth}
}

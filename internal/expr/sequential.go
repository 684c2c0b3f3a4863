package expr

import (
	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	"github.com/DjordjeVuckovic/ordercalc/internal/token"
)

// SequentialEvaluator applies each operator to the running result as soon as its
// right operand is known. Parenthesized runs are evaluated recursively first.
type SequentialEvaluator struct {
	maxDepth int
}

func NewSequential(opts ...Option) *SequentialEvaluator {
	o := buildOptions(opts)
	return &SequentialEvaluator{maxDepth: o.maxDepth}
}

func (e *SequentialEvaluator) Regime() Regime {
	return Sequential
}

func (e *SequentialEvaluator) Evaluate(tokens []token.Token) (int64, error) {
	return e.eval(tokens, 0)
}

func (e *SequentialEvaluator) eval(tokens []token.Token, depth int) (int64, error) {
	if err := checkDepth(depth, e.maxDepth); err != nil {
		return 0, err
	}

	var (
		result      int64
		seen        bool // zero is a valid result, so presence is tracked separately
		pending     token.Type
		wantOperand = true
	)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		var operand int64
		switch tok.Type {
		case token.ADD, token.MUL:
			if wantOperand {
				return 0, apperr.NewParse(tok.String(), tok.Pos, "operator without a left operand")
			}
			pending = tok.Type
			wantOperand = true
			continue
		case token.INT:
			operand = tok.Value
		case token.LPAREN:
			end, err := matchParen(tokens, i)
			if err != nil {
				return 0, err
			}
			if end == i+1 {
				return 0, apperr.NewParse("()", tok.Pos, "empty parentheses")
			}
			v, err := e.eval(tokens[i+1:end], depth+1)
			if err != nil {
				return 0, err
			}
			operand = v
			i = end
		case token.RPAREN:
			return 0, &apperr.UnbalancedParenError{Pos: tok.Pos}
		default:
			return 0, apperr.NewParse(tok.String(), tok.Pos, "invalid token")
		}

		if !wantOperand {
			return 0, apperr.NewParse(tok.String(), tok.Pos, "missing operator between operands")
		}
		wantOperand = false

		if !seen {
			result, seen = operand, true
			continue
		}
		r, err := apply(pending, result, operand)
		if err != nil {
			return 0, err
		}
		result = r
	}

	if !seen {
		return 0, apperr.NewParse("", -1, "empty expression")
	}
	if wantOperand {
		last := tokens[len(tokens)-1]
		return 0, apperr.NewParse(last.String(), last.Pos, "expression ends with an operator")
	}

	return result, nil
}

package expr

import (
	"fmt"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	"github.com/DjordjeVuckovic/ordercalc/internal/token"
	"github.com/DjordjeVuckovic/ordercalc/pkg/utils"
)

// DefaultMaxDepth is the parenthesis nesting ceiling used when none is configured.
const DefaultMaxDepth = 256

// Evaluator computes the value of a tokenized expression under one precedence regime.
// Implementations are stateless and safe for concurrent use.
type Evaluator interface {
	Regime() Regime
	Evaluate(tokens []token.Token) (int64, error)
}

type options struct {
	maxDepth int
}

type Option func(*options)

// WithMaxDepth limits parenthesis nesting. A non-positive limit disables the check.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

func buildOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the evaluator for the given regime.
func New(r Regime, opts ...Option) (Evaluator, error) {
	switch r {
	case Sequential:
		return NewSequential(opts...), nil
	case AdditionFirst:
		return NewAdditionFirst(opts...), nil
	default:
		return nil, apperr.NewValidation(fmt.Sprintf("unknown regime %q", r))
	}
}

// NewSet builds one evaluator per regime, preserving order.
func NewSet(regimes []Regime, opts ...Option) ([]Evaluator, error) {
	evs := make([]Evaluator, 0, len(regimes))
	for _, r := range regimes {
		ev, err := New(r, opts...)
		if err != nil {
			return nil, err
		}
		evs = append(evs, ev)
	}
	return evs, nil
}

// Tokenize splits and validates a single expression line.
func Tokenize(line string) ([]token.Token, error) {
	tokenizer := token.NewWordTokenizer()
	tokens, err := tokenizer.Tokenize(line)
	if err != nil {
		return nil, err
	}
	if err := tokenizer.Validate(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// EvaluateLine tokenizes, validates and evaluates a single expression line.
func EvaluateLine(ev Evaluator, line string) (int64, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return 0, err
	}
	return ev.Evaluate(tokens)
}

func checkDepth(depth, limit int) error {
	if limit > 0 && depth > limit {
		return &apperr.DepthLimitError{Limit: limit}
	}
	return nil
}

func apply(op token.Type, a, b int64) (int64, error) {
	var (
		r  int64
		ok bool
	)
	switch op {
	case token.ADD:
		r, ok = utils.AddInt64(a, b)
	case token.MUL:
		r, ok = utils.MulInt64(a, b)
	default:
		return 0, apperr.NewParse(op.Symbol(), -1, "unknown operator")
	}
	if !ok {
		return 0, &apperr.OverflowError{Op: op.Symbol(), A: a, B: b}
	}
	return r, nil
}

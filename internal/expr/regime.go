package expr

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
)

// Regime selects the operator precedence used during evaluation.
type Regime string

const (
	// Sequential applies operators strictly left to right, with equal precedence.
	Sequential Regime = "sequential"
	// AdditionFirst makes '+' bind tighter than '*'.
	AdditionFirst Regime = "addition-first"
)

// AllRegimes lists every regime in reporting order.
var AllRegimes = []Regime{Sequential, AdditionFirst}

func (r Regime) String() string {
	return string(r)
}

func (r Regime) Valid() bool {
	return r == Sequential || r == AdditionFirst
}

// ParseRegime accepts the short names "a"/"b" as well as the full regime names.
func ParseRegime(s string) (Regime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "sequential":
		return Sequential, nil
	case "b", "addition-first", "add-first":
		return AdditionFirst, nil
	default:
		return "", apperr.NewValidation(fmt.Sprintf("unknown regime %q", s))
	}
}

// ParseRegimes parses a selector: "both" or "" means every regime.
func ParseRegimes(s string) ([]Regime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "all":
		return append([]Regime(nil), AllRegimes...), nil
	}
	r, err := ParseRegime(s)
	if err != nil {
		return nil, err
	}
	return []Regime{r}, nil
}

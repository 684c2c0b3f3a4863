package suite

import (
	"log/slog"

	"github.com/DjordjeVuckovic/ordercalc/internal/expr"
)

// Check evaluates every case under every evaluator the case has an expectation for.
// Results are ordered by case, then by evaluator order.
func Check(s *Suite, evaluators []expr.Evaluator) []CaseResult {
	var results []CaseResult

	for i := range s.Cases {
		c := &s.Cases[i]

		tokens, tokErr := expr.Tokenize(c.Expression)
		for _, ev := range evaluators {
			want, ok := c.expected[ev.Regime()]
			if !ok {
				continue
			}

			r := CaseResult{
				CaseID:     c.ID,
				Expression: c.Expression,
				Regime:     ev.Regime(),
				Expected:   want,
				Err:        tokErr,
			}
			if tokErr == nil {
				r.Actual, r.Err = ev.Evaluate(tokens)
			}

			if !r.Passed() {
				slog.Warn("Case failed",
					"case", c.ID,
					"regime", r.Regime,
					"expected", r.Expected,
					"actual", r.Actual,
					"error", r.Err,
				)
			}
			results = append(results, r)
		}
	}

	return results
}

package suite

import "github.com/DjordjeVuckovic/ordercalc/internal/expr"

type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`
}

// Case is one example expression. Expect is keyed by regime name ("sequential",
// "addition-first" or the short forms "a"/"b").
type Case struct {
	ID          string           `yaml:"id"`
	Description string           `yaml:"description,omitempty"`
	Expression  string           `yaml:"expression"`
	Expect      map[string]int64 `yaml:"expect"`

	expected map[expr.Regime]int64
}

// Expected returns the normalized expectations. Only valid on parsed suites.
func (c *Case) Expected() map[expr.Regime]int64 {
	return c.expected
}

type CaseResult struct {
	CaseID     string
	Expression string
	Regime     expr.Regime
	Expected   int64
	Actual     int64
	Err        error
}

func (r CaseResult) Passed() bool {
	return r.Err == nil && r.Expected == r.Actual
}

type Summary struct {
	Passed int
	Failed int
}

func Summarize(results []CaseResult) Summary {
	var s Summary
	for _, r := range results {
		if r.Passed() {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

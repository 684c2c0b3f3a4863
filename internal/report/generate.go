package report

import (
	"time"

	"github.com/DjordjeVuckovic/ordercalc/internal/suite"
	"github.com/DjordjeVuckovic/ordercalc/internal/worksheet"
	"github.com/DjordjeVuckovic/ordercalc/pkg/utils"
)

// FromWorksheet builds a report; per-line entries are included only when verbose
// is set, except for skipped lines which are always listed.
func FromWorksheet(res *worksheet.Result, verbose bool) *Report {
	r := &Report{
		RunID:       res.RunID.String(),
		Source:      res.Source,
		GeneratedAt: time.Now().UTC(),
		ElapsedMS:   utils.RoundDecimal(float64(res.Elapsed.Microseconds())/1000, 3),
		LineCount:   len(res.Lines),
		Skipped:     res.Skipped,
	}

	for _, regime := range res.Regimes {
		r.Totals = append(r.Totals, RegimeTotal{Regime: regime.String(), Total: res.Totals[regime]})
	}

	for _, lr := range res.Lines {
		if !verbose && lr.Err == nil {
			continue
		}
		entry := LineReport{Line: lr.Line, Expression: lr.Expression}
		if lr.Err != nil {
			entry.Error = lr.Err.Error()
		} else {
			entry.Values = make(map[string]int64, len(lr.Values))
			for regime, v := range lr.Values {
				entry.Values[regime.String()] = v
			}
		}
		r.Lines = append(r.Lines, entry)
	}

	return r
}

func FromSuite(s *suite.Suite, results []suite.CaseResult) *SuiteReport {
	sum := suite.Summarize(results)
	r := &SuiteReport{
		Name:    s.Name,
		Passed:  sum.Passed,
		Failed:  sum.Failed,
		Results: make([]CaseReport, 0, len(results)),
	}

	for _, cr := range results {
		entry := CaseReport{
			CaseID:     cr.CaseID,
			Expression: cr.Expression,
			Regime:     cr.Regime.String(),
			Expected:   cr.Expected,
			Actual:     cr.Actual,
			Passed:     cr.Passed(),
		}
		if cr.Err != nil {
			entry.Error = cr.Err.Error()
		}
		r.Results = append(r.Results, entry)
	}

	return r
}

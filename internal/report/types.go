package report

import "time"

type Report struct {
	RunID       string        `json:"run_id"`
	Source      string        `json:"source"`
	GeneratedAt time.Time     `json:"generated_at"`
	ElapsedMS   float64       `json:"elapsed_ms"`
	Totals      []RegimeTotal `json:"totals"`
	LineCount   int           `json:"line_count"`
	Skipped     int           `json:"skipped"`
	Lines       []LineReport  `json:"lines,omitempty"`
}

type RegimeTotal struct {
	Regime string `json:"regime"`
	Total  int64  `json:"total"`
}

type LineReport struct {
	Line       int              `json:"line"`
	Expression string           `json:"expression"`
	Values     map[string]int64 `json:"values,omitempty"`
	Error      string           `json:"error,omitempty"`
}

type SuiteReport struct {
	Name    string       `json:"name"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Results []CaseReport `json:"results"`
}

type CaseReport struct {
	CaseID     string `json:"case_id"`
	Expression string `json:"expression"`
	Regime     string `json:"regime"`
	Expected   int64  `json:"expected"`
	Actual     int64  `json:"actual"`
	Passed     bool   `json:"passed"`
	Error      string `json:"error,omitempty"`
}

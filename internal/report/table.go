package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func (r *Report) WriteTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Operation Order: %s ===\n\n", r.Source)

	if len(r.Lines) > 0 {
		writeLineTable(tw, r)
	}

	fmt.Fprintln(tw, "Regime\tTotal")
	fmt.Fprintln(tw, "---\t---")
	for _, t := range r.Totals {
		fmt.Fprintf(tw, "%s\t%d\n", t.Regime, t.Total)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Lines: %d  Skipped: %d  Elapsed: %.3fms  Run: %s\n", r.LineCount, r.Skipped, r.ElapsedMS, r.RunID)

	tw.Flush()
}

func writeLineTable(tw *tabwriter.Writer, r *Report) {
	header := []string{"Line", "Expression"}
	for _, t := range r.Totals {
		header = append(header, t.Regime)
	}
	header = append(header, "Status")
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, separator(len(header)))

	for _, l := range r.Lines {
		row := []string{fmt.Sprintf("%d", l.Line), l.Expression}
		for _, t := range r.Totals {
			if v, ok := l.Values[t.Regime]; ok {
				row = append(row, fmt.Sprintf("%d", v))
			} else {
				row = append(row, "-")
			}
		}
		if l.Error != "" {
			row = append(row, "ERR: "+l.Error)
		} else {
			row = append(row, "OK")
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func (r *SuiteReport) WriteTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Name)

	header := []string{"Case", "Regime", "Expected", "Actual", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, separator(len(header)))

	for _, c := range r.Results {
		status := "PASS"
		actual := fmt.Sprintf("%d", c.Actual)
		if c.Error != "" {
			status = "ERR: " + c.Error
			actual = "-"
		} else if !c.Passed {
			status = "FAIL"
		}
		fmt.Fprintln(tw, strings.Join([]string{c.CaseID, c.Regime, fmt.Sprintf("%d", c.Expected), actual, status}, "\t"))
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Passed: %d  Failed: %d\n", r.Passed, r.Failed)

	tw.Flush()
}

func separator(n int) string {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	return strings.Join(sep, "\t")
}

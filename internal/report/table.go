package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Conversion Suite: %s ===\n\n", r.Suite)

	header := []string{"Case", "Infix", "Expected", "Got", "Value", "Latency", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Entries {
		row := []string{
			e.CaseID,
			quote(e.Infix),
			quote(e.Expected),
			quote(got(e)),
			fmtValue(e.Value),
			e.Latency.Truncate(100).String(),
			string(e.Status),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Passed: %d/%d\tFailed: %d\tDuration: %s\n", r.Passed, r.Total(), r.Failed, r.Duration.Truncate(1000))

	for _, e := range r.Entries {
		if e.Reason != "" {
			fmt.Fprintf(tw, "  %s: %s\n", e.CaseID, e.Reason)
		}
	}

	return tw.Flush()
}

func got(e Entry) string {
	if e.ErrorKind != "" {
		return e.ErrorKind
	}
	return e.Got
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	return s
}

func fmtValue(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *v)
}

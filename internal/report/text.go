package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Generate writes human-readable terminal output.
func (r *TextReporter) Generate(rep Report) error {
	w := &errWriter{w: r.Writer}

	w.println("bqusage — BigQuery Usage Report")
	w.println(strings.Repeat("=", 31))
	w.println("")

	w.println("Storage (monthly)")
	w.println("-----------------")
	tw := tabwriter.NewWriter(r.Writer, 0, 4, 2, ' ', 0)
	tw2 := &errWriter{w: tw}
	tw2.printf("DATASET\tBYTES\tGB\tTB\tUSD\tJPY\n")
	tw2.printf("-------\t-----\t--\t--\t---\t---\n")
	for _, ds := range rep.Storage.Datasets {
		tw2.printf("%s\t%d\t%.3f\t%.6f\t$%.2f\t¥%.2f\n",
			ds.DatasetID, ds.SizeBytes, ds.SizeGB, ds.SizeTB, ds.CostUSD, ds.CostJPY)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	w.printf("Total: %d bytes, $%.2f / ¥%.2f per month\n\n",
		rep.Storage.TotalSizeBytes, rep.Storage.TotalCostUSD, rep.Storage.TotalCostJPY)

	w.println("Queries (trailing 24h)")
	w.println("----------------------")
	if len(rep.Query.Users) == 0 {
		w.println("No query activity recorded.")
	} else {
		tw = tabwriter.NewWriter(r.Writer, 0, 4, 2, ' ', 0)
		tw2 = &errWriter{w: tw}
		tw2.printf("USER\tBYTES\tTB\tUSD\tJPY\n")
		tw2.printf("----\t-----\t--\t---\t---\n")
		for _, u := range rep.Query.Users {
			tw2.printf("%s\t%d\t%.6f\t$%.2f\t¥%.2f\n",
				u.UserEmail, u.BytesProcessed, u.TBProcessed, u.CostUSD, u.CostJPY)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	w.printf("Total: %d bytes (%.6f TB), $%.2f / ¥%.2f\n",
		rep.Query.TotalBytesProcessed, rep.Query.TotalTBProcessed,
		rep.Query.TotalCostUSD, rep.Query.TotalCostJPY)

	return w.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

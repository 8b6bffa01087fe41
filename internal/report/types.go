package report

import (
	"io"

	"github.com/ysuzuki/bqusage/internal/analyzer"
)

// Reporter is the interface for output formatters.
type Reporter interface {
	Generate(r Report) error
}

// Report merges the two analysis summaries into the document emitted per run.
type Report struct {
	Storage analyzer.StorageSummary `json:"storage"`
	Query   analyzer.QuerySummary   `json:"query"`
}

// Assemble builds the report from the pipeline outputs.
func Assemble(storage analyzer.StorageSummary, query analyzer.QuerySummary) Report {
	return Report{Storage: storage, Query: query}
}

// JSONReporter writes the report as one indented UTF-8 JSON document.
type JSONReporter struct {
	Writer io.Writer
}

// TextReporter writes human-readable terminal output.
type TextReporter struct {
	Writer io.Writer
}

package report

import (
	"encoding/json"
	"fmt"
)

// Generate writes the report as JSON with 2-space indentation. HTML escaping
// is disabled so user emails and non-ASCII identifiers pass through verbatim.
func (r *JSONReporter) Generate(rep Report) error {
	enc := json.NewEncoder(r.Writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode usage report: %w", err)
	}
	return nil
}

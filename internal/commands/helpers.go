package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ysuzuki/bqusage/internal/report"
)

// Process exit codes for fatal pipeline failures.
const (
	ExitConfig  = 101
	ExitClient  = 102
	ExitStorage = 103
)

// exitError carries a distinct process exit code up to main.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if err != nil {
		return 1
	}
	return 0
}

// enhanceError wraps an error with context and suggestions for common GCP issues.
func enhanceError(action string, err error) error {
	msg := err.Error()

	var hint string
	switch {
	case strings.Contains(msg, "GOOGLE_APPLICATION_CREDENTIALS"):
		hint = "Configure GCP credentials: set key_file in the settings file or GOOGLE_APPLICATION_CREDENTIALS"
	case strings.Contains(msg, "could not find default credentials"):
		hint = "Configure GCP credentials: set key_file or run 'gcloud auth application-default login'"
	case strings.Contains(msg, "PermissionDenied") || strings.Contains(msg, "403"):
		hint = "Insufficient permissions. The service account needs BigQuery Data Viewer and Job User roles"
	case strings.Contains(msg, "notFound") || strings.Contains(msg, "404"):
		hint = "Check that project_id, region, and dataset names in the settings file are correct"
	case strings.Contains(msg, "Quota exceeded"):
		hint = "API quota hit. Reduce the dataset list or retry later"
	}

	if hint != "" {
		return fmt.Errorf("%s: %w\n  hint: %s", action, err, hint)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// selectReporter returns the reporter for an output format.
func selectReporter(format string, w io.Writer) (report.Reporter, error) {
	switch format {
	case "json":
		return &report.JSONReporter{Writer: w}, nil
	case "text":
		return &report.TextReporter{Writer: w}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (supported: json, text)", format)
	}
}

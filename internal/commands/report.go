package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/ysuzuki/bqusage/internal/analyzer"
	"github.com/ysuzuki/bqusage/internal/bigquery"
	"github.com/ysuzuki/bqusage/internal/config"
	"github.com/ysuzuki/bqusage/internal/report"
)

var reportFlags struct {
	configPath string
	format     string
	outputFile string
	timeout    time.Duration
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the storage and query usage report",
	Long: `Reads the settings file, queries BigQuery dataset metadata and the
INFORMATION_SCHEMA job history, and writes one usage report.

A dataset whose lookup fails is reported with zero usage; a failed job-history
query yields an empty query section. Both are logged and neither aborts the run.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFlags.configPath, "config", "c", "", "Settings file path (default: settings.json, settings.yaml)")
	reportCmd.Flags().StringVar(&reportFlags.format, "format", "json", "Output format: json or text")
	reportCmd.Flags().StringVarP(&reportFlags.outputFile, "output", "o", "", "Output file path (default: stdout)")
	reportCmd.Flags().DurationVar(&reportFlags.timeout, "timeout", 10*time.Minute, "Overall run timeout")
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if reportFlags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, reportFlags.timeout)
		defer cancel()
	}

	cfg, err := loadSettings()
	if err != nil {
		return &exitError{code: ExitConfig, err: err}
	}

	slog.Info("Analyzing BigQuery usage",
		"project", cfg.ProjectID, "region", cfg.Region, "datasets", len(cfg.Datasets))

	client, err := bigquery.NewClient(ctx, cfg.ProjectID, cfg.KeyFile)
	if err != nil {
		return &exitError{code: ExitClient, err: enhanceError("initialize BigQuery client", err)}
	}
	defer func() { _ = client.Close() }()

	rates := cfg.Rates()

	storage, err := analyzer.NewStorageAnalyzer(client, rates).Analyze(ctx, cfg.Datasets)
	if err != nil {
		return &exitError{code: ExitStorage, err: enhanceError("analyze storage usage", err)}
	}

	query := analyzer.NewQueryAnalyzer(client, cfg.ProjectID, cfg.Region, rates).Analyze(ctx)

	out, closeOut, err := openOutput(reportFlags.outputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	reporter, err := selectReporter(reportFlags.format, out)
	if err != nil {
		return err
	}
	return reporter.Generate(report.Assemble(storage, query))
}

func loadSettings() (config.Config, error) {
	if reportFlags.configPath != "" {
		return config.Load(reportFlags.configPath)
	}
	return config.LoadDefault()
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, enhanceError("create output file", err)
	}
	return f, func() { _ = f.Close() }, nil
}

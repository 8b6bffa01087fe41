package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ysuzuki/bqusage/internal/logging"
)

var (
	verbose bool
	version string
	commit  string
	date    string
)

var rootCmd = &cobra.Command{
	Use:   "bqusage",
	Short: "bqusage — BigQuery storage and query cost reporter",
	Long: `bqusage reads BigQuery dataset metadata and the project's job history to
report storage size and query bytes processed, with estimated costs in USD
and JPY.

Storage cost covers the configured datasets; query cost covers the trailing
24 hours, broken down by user.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("bqusage %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

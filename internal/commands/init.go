package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a sample settings file",
	Long:  `Creates a commented settings.yaml in the current directory.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite an existing file")
}

func runInit(_ *cobra.Command, _ []string) error {
	const path = "settings.yaml"

	if !initFlags.force {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Skipping %s (already exists, use --force to overwrite)\n", path)
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(sampleSettings), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Printf("Created %s\n", path)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Set project_id, region, and the datasets to monitor")
	fmt.Println("  2. Point key_file at a service-account key with BigQuery read access")
	fmt.Println("  3. Run: bqusage report")
	return nil
}

const sampleSettings = `# bqusage settings

# GCP project to analyze (required)
project_id: my-project-id

# BigQuery region of the job history, e.g. us, eu, asia-northeast1 (required)
region: us

# Service-account key file with BigQuery read access (required)
key_file: key.json

# Datasets whose storage usage is reported (required)
datasets:
  - analytics
  - raw_events

# Billing rate overrides. Defaults: 0.02 USD/GB-month storage,
# 6.0 USD/TB queries, 150 JPY per USD.
# storage_rate_usd_per_gb: 0.02
# query_rate_usd_per_tb: 6.0
# usd_to_jpy_rate: 150
`

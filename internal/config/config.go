package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ysuzuki/bqusage/internal/pricing"
	"gopkg.in/yaml.v3"
)

// Config holds the monitoring settings loaded from a settings file.
type Config struct {
	ProjectID string   `json:"project_id" yaml:"project_id"`
	Region    string   `json:"region" yaml:"region"`
	KeyFile   string   `json:"key_file" yaml:"key_file"`
	Datasets  []string `json:"datasets" yaml:"datasets"`

	// Optional rate overrides. Zero values fall back to the defaults.
	StorageRateUSDPerGB float64 `json:"storage_rate_usd_per_gb,omitempty" yaml:"storage_rate_usd_per_gb"`
	QueryRateUSDPerTB   float64 `json:"query_rate_usd_per_tb,omitempty" yaml:"query_rate_usd_per_tb"`
	USDToJPYRate        float64 `json:"usd_to_jpy_rate,omitempty" yaml:"usd_to_jpy_rate"`
}

// Rates returns the billing rates, applying defaults for unset overrides.
func (c Config) Rates() pricing.Rates {
	r := pricing.DefaultRates()
	if c.StorageRateUSDPerGB > 0 {
		r.StorageUSDPerGB = c.StorageRateUSDPerGB
	}
	if c.QueryRateUSDPerTB > 0 {
		r.QueryUSDPerTB = c.QueryRateUSDPerTB
	}
	if c.USDToJPYRate > 0 {
		r.USDToJPY = c.USDToJPYRate
	}
	return r
}

// DefaultPaths are tried in order when no settings path is given.
var DefaultPaths = []string{"settings.json", "settings.yaml", "settings.yml"}

// LoadDefault loads the first settings file found among DefaultPaths.
func LoadDefault() (Config, error) {
	for _, path := range DefaultPaths {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Config{}, fmt.Errorf("no settings file found (tried %s)", strings.Join(DefaultPaths, ", "))
}

// Load reads and validates a settings file. YAML and JSON are accepted,
// dispatched on the file extension (.json is the historical default).
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	if c.ProjectID == "" {
		missing = append(missing, "project_id")
	}
	if c.Region == "" {
		missing = append(missing, "region")
	}
	if c.KeyFile == "" {
		missing = append(missing, "key_file")
	}
	if len(c.Datasets) == 0 {
		missing = append(missing, "datasets")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

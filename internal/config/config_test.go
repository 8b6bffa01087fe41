package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "settings.json", `{
  "project_id": "my-project",
  "region": "us",
  "key_file": "/etc/bq/key.json",
  "datasets": ["analytics", "raw_events"]
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ProjectID != "my-project" {
		t.Errorf("ProjectID = %q, want %q", cfg.ProjectID, "my-project")
	}
	if cfg.Region != "us" {
		t.Errorf("Region = %q, want %q", cfg.Region, "us")
	}
	if cfg.KeyFile != "/etc/bq/key.json" {
		t.Errorf("KeyFile = %q, want %q", cfg.KeyFile, "/etc/bq/key.json")
	}
	if len(cfg.Datasets) != 2 {
		t.Errorf("Datasets len = %d, want 2", len(cfg.Datasets))
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "settings.yaml", `project_id: my-project
region: asia-northeast1
key_file: key.json
datasets:
  - analytics
storage_rate_usd_per_gb: 0.023
query_rate_usd_per_tb: 5.0
usd_to_jpy_rate: 140
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Region != "asia-northeast1" {
		t.Errorf("Region = %q, want %q", cfg.Region, "asia-northeast1")
	}

	r := cfg.Rates()
	if r.StorageUSDPerGB != 0.023 {
		t.Errorf("StorageUSDPerGB = %f, want 0.023", r.StorageUSDPerGB)
	}
	if r.QueryUSDPerTB != 5.0 {
		t.Errorf("QueryUSDPerTB = %f, want 5.0", r.QueryUSDPerTB)
	}
	if r.USDToJPY != 140 {
		t.Errorf("USDToJPY = %f, want 140", r.USDToJPY)
	}
}

func TestLoadMissingFields(t *testing.T) {
	path := writeFile(t, "settings.json", `{"project_id": "my-project"}`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should error on missing fields")
	}
	for _, field := range []string{"region", "key_file", "datasets"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should name missing field %q", err, field)
		}
	}
	if strings.Contains(err.Error(), "project_id") {
		t.Errorf("error %q should not name present field project_id", err)
	}
}

func TestLoadEmptyDatasets(t *testing.T) {
	path := writeFile(t, "settings.json", `{
  "project_id": "p",
  "region": "us",
  "key_file": "k.json",
  "datasets": []
}`)

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an empty dataset list")
	}
}

func TestLoadNoFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load() should error on a missing file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeFile(t, "settings.json", `{not json`)
	if _, err := Load(path); err == nil {
		t.Error("Load() should error on invalid JSON")
	}
}

func TestLoadDefaultPrefersJSON(t *testing.T) {
	dir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Log("failed to restore dir:", err)
		}
	})

	jsonCfg := `{"project_id": "from-json", "region": "us", "key_file": "k", "datasets": ["d"]}`
	if err := os.WriteFile("settings.json", []byte(jsonCfg), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("settings.yaml", []byte("project_id: from-yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	if cfg.ProjectID != "from-json" {
		t.Errorf("ProjectID = %q, want %q (settings.json first)", cfg.ProjectID, "from-json")
	}
}

func TestLoadDefaultNoFile(t *testing.T) {
	dir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Log("failed to restore dir:", err)
		}
	})

	if _, err := LoadDefault(); err == nil {
		t.Error("LoadDefault() should error when no settings file exists")
	}
}

func TestRatesDefaults(t *testing.T) {
	r := Config{}.Rates()
	if r.StorageUSDPerGB != 0.02 || r.QueryUSDPerTB != 6.0 || r.USDToJPY != 150 {
		t.Errorf("default rates = %+v", r)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"hours", "2h", 2 * time.Hour, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"seconds", 30 * time.Second, "30s"},
		{"minutes", 5 * time.Minute, "5m0s"},
		{"hours", 2 * time.Hour, "2h0m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Duration{tt.duration}
			result, err := d.MarshalText()

			if err != nil {
				t.Errorf("MarshalText() error = %v", err)
				return
			}

			if string(result) != tt.expected {
				t.Errorf("MarshalText() = %v, want %v", string(result), tt.expected)
			}
		})
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	cfg := &Config{}
	cfg.applyDefaults()

	// General defaults
	if cfg.General.Name != "roteiro" {
		t.Errorf("General.Name = %v, want roteiro", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want development", cfg.General.Environment)
	}
	if cfg.General.DataDir != "/home/tester/.local/share/roteiro" {
		t.Errorf("General.DataDir = %v", cfg.General.DataDir)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}

	// Interpreter defaults
	if cfg.Interpreter.MaxSourceSize != 1<<20 {
		t.Errorf("Interpreter.MaxSourceSize = %v, want 1 MiB", cfg.Interpreter.MaxSourceSize)
	}
	if cfg.Interpreter.CacheTTL.Duration != 5*time.Minute {
		t.Errorf("Interpreter.CacheTTL = %v, want 5m", cfg.Interpreter.CacheTTL.Duration)
	}
	if cfg.Interpreter.StrictTopLevel {
		t.Error("Interpreter.StrictTopLevel should default to false")
	}

	// Report, store and watch defaults
	if cfg.Report.Format != "text" {
		t.Errorf("Report.Format = %v, want text", cfg.Report.Format)
	}
	if cfg.Store.Path != "/home/tester/.local/share/roteiro/history.db" {
		t.Errorf("Store.Path = %v", cfg.Store.Path)
	}
	if cfg.Watch.Debounce.Duration != 300*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 300ms", cfg.Watch.Debounce.Duration)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"styled report", func(c *Config) { c.Report.Format = "styled" }, false},
		{"pdf report", func(c *Config) { c.Report.Format = "pdf" }, true},
		{"xml logs", func(c *Config) { c.General.LogFormat = "xml" }, true},
		{"negative size", func(c *Config) { c.Interpreter.MaxSourceSize = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("Load() expected error for non-existent file")
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[general]
name = "roteiro-test"
environment = "test"
data_dir = "` + tmpDir + `"

[interpreter]
strict_top_level = true
cache_enabled = true
cache_ttl = "30s"

[report]
format = "yaml"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "roteiro-test" {
		t.Errorf("General.Name = %v, want roteiro-test", cfg.General.Name)
	}
	if !cfg.Interpreter.StrictTopLevel || !cfg.Interpreter.CacheEnabled {
		t.Errorf("Interpreter = %+v", cfg.Interpreter)
	}
	if cfg.Interpreter.CacheTTL.Duration != 30*time.Second {
		t.Errorf("Interpreter.CacheTTL = %v, want 30s", cfg.Interpreter.CacheTTL.Duration)
	}
	if cfg.Report.Format != "yaml" {
		t.Errorf("Report.Format = %v, want yaml", cfg.Report.Format)
	}

	// Defaults for missing values follow the configured data dir
	if cfg.Store.Path != filepath.Join(tmpDir, "history.db") {
		t.Errorf("Store.Path = %v", cfg.Store.Path)
	}
}

func TestLoad_YAMLConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
general:
  log_level: debug
  log_format: json
watch:
  debounce: 1s
store:
  enabled: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "debug" || cfg.General.LogFormat != "json" {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.Watch.Debounce.Duration != time.Second {
		t.Errorf("Watch.Debounce = %v, want 1s", cfg.Watch.Debounce.Duration)
	}
	if !cfg.Store.Enabled {
		t.Error("Store.Enabled should be true")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[report]\nformat = \"pdf\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	if _, err := Load(configPath); err == nil {
		t.Error("Load() expected error for unsupported report format")
	}
}

func TestConfig_expandEnvVars(t *testing.T) {
	t.Setenv("TRIPS_DIR", "/srv/trips")

	cfg := &Config{
		General: GeneralConfig{DataDir: "$TRIPS_DIR/data"},
		Store:   StoreConfig{Path: "${TRIPS_DIR}/runs.db"},
	}

	cfg.expandEnvVars()

	if cfg.General.DataDir != "/srv/trips/data" {
		t.Errorf("DataDir = %v, want /srv/trips/data", cfg.General.DataDir)
	}
	if cfg.Store.Path != "/srv/trips/runs.db" {
		t.Errorf("Store.Path = %v, want /srv/trips/runs.db", cfg.Store.Path)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	// Change to a temp directory without config files
	originalWd, _ := os.Getwd()
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	defer os.Chdir(originalWd)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "roteiro" {
		t.Errorf("LoadFromEnv() without a file should return defaults, got %+v", cfg.General)
	}
}

func TestLoadFromEnv_UsesVariable(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(configPath, []byte("[general]\nname = \"from-env\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv(EnvConfigPath, configPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "from-env" {
		t.Errorf("General.Name = %v, want from-env", cfg.General.Name)
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "ROTEIRO_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General     GeneralConfig     `toml:"general" yaml:"general"`
	Interpreter InterpreterConfig `toml:"interpreter" yaml:"interpreter"`
	Report      ReportConfig      `toml:"report" yaml:"report"`
	Store       StoreConfig       `toml:"store" yaml:"store"`
	Watch       WatchConfig       `toml:"watch" yaml:"watch"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	DataDir     string `toml:"data_dir" yaml:"data_dir"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// InterpreterConfig holds engine settings
type InterpreterConfig struct {
	MaxSourceSize  int      `toml:"max_source_size" yaml:"max_source_size"`
	StrictTopLevel bool     `toml:"strict_top_level" yaml:"strict_top_level"`
	CacheEnabled   bool     `toml:"cache_enabled" yaml:"cache_enabled"`
	CacheTTL       Duration `toml:"cache_ttl" yaml:"cache_ttl"`
	CacheMaxItems  int      `toml:"cache_max_items" yaml:"cache_max_items"`
}

// ReportConfig holds report rendering settings
type ReportConfig struct {
	Format string `toml:"format" yaml:"format"`
	Output string `toml:"output" yaml:"output"`
}

// StoreConfig holds run history settings
type StoreConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
}

// WatchConfig holds watch mode settings
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file, or from YAML when the file
// extension is .yaml or .yml
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the ROTEIRO_CONFIG environment
// variable or the first default location that exists. Without any file it
// returns the defaults.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	cfg.expandEnvVars()
	return cfg, nil
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	return []string{
		"./configs/config.toml",
		"./config.toml",
		filepath.Join(os.Getenv("HOME"), ".config/roteiro/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "roteiro"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = filepath.Join(os.Getenv("HOME"), ".local/share/roteiro")
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Interpreter
	if c.Interpreter.MaxSourceSize == 0 {
		c.Interpreter.MaxSourceSize = 1 << 20
	}
	if c.Interpreter.CacheTTL.Duration == 0 {
		c.Interpreter.CacheTTL.Duration = 5 * time.Minute
	}
	if c.Interpreter.CacheMaxItems == 0 {
		c.Interpreter.CacheMaxItems = 64
	}

	// Report
	if c.Report.Format == "" {
		c.Report.Format = "text"
	}

	// Store
	if c.Store.Path == "" {
		c.Store.Path = filepath.Join(c.General.DataDir, "history.db")
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 300 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Store.Path = os.ExpandEnv(c.Store.Path)
	c.Report.Output = os.ExpandEnv(c.Report.Output)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if c.Interpreter.MaxSourceSize < 0 {
		return fmt.Errorf("interpreter.max_source_size must not be negative: %d", c.Interpreter.MaxSourceSize)
	}
	if c.Interpreter.CacheMaxItems < 0 {
		return fmt.Errorf("interpreter.cache_max_items must not be negative: %d", c.Interpreter.CacheMaxItems)
	}
	switch c.General.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("general.log_format must be text or json: %q", c.General.LogFormat)
	}
	switch c.Report.Format {
	case "text", "styled", "yaml", "json":
	default:
		return fmt.Errorf("report.format must be text, styled, yaml or json: %q", c.Report.Format)
	}
	return nil
}

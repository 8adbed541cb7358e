package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel  = "info"
	defaultTreeLevel = 0
)

// ErrManifestRequired is returned when no manifest path is configured.
var ErrManifestRequired = errors.New("manifest path is required")

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	ManifestPath string
	LogLevel     string
	FailFast     bool
	TreeLevel    int
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Manifest  string `yaml:"manifest"`
	LogLevel  string `yaml:"log_level"`
	FailFast  *bool  `yaml:"fail_fast"`
	TreeLevel *int   `yaml:"tree_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile   string
	ManifestPath *string
	LogLevel     *string
	FailFast     *bool
	TreeLevel    *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables (lowest source after defaults)
	applyEnvConfig(&cfg)

	// Load from YAML file if specified (overrides environment)
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		LogLevel:  defaultLogLevel,
		FailFast:  false,
		TreeLevel: defaultTreeLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Manifest != "" {
		cfg.ManifestPath = yamlCfg.Manifest
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	if yamlCfg.FailFast != nil {
		cfg.FailFast = *yamlCfg.FailFast
	}

	if yamlCfg.TreeLevel != nil {
		cfg.TreeLevel = *yamlCfg.TreeLevel
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if path := strings.TrimSpace(os.Getenv("MOVER_MANIFEST")); path != "" {
		cfg.ManifestPath = path
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if failFast := strings.TrimSpace(os.Getenv("MOVER_FAIL_FAST")); failFast != "" {
		if value, err := strconv.ParseBool(failFast); err == nil {
			cfg.FailFast = value
		}
	}

	if treeLevel := strings.TrimSpace(os.Getenv("MOVER_TREE_LEVEL")); treeLevel != "" {
		if value, err := strconv.Atoi(treeLevel); err == nil && value >= 0 {
			cfg.TreeLevel = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.ManifestPath != nil && *overrides.ManifestPath != "" {
		cfg.ManifestPath = *overrides.ManifestPath
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.FailFast != nil {
		cfg.FailFast = *overrides.FailFast
	}

	if overrides.TreeLevel != nil {
		cfg.TreeLevel = *overrides.TreeLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.ManifestPath) == "" {
		return ErrManifestRequired
	}
	if cfg.TreeLevel < 0 {
		return fmt.Errorf("tree level must be >= 0, got %d", cfg.TreeLevel)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

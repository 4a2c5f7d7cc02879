package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/workout-tracker/internal/packages"
)

const defaultLogLevel = "info"

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Packages    []packages.Package `yaml:"packages"`
	LogLevel    string             `yaml:"log_level"`
	LogRecords  bool               `yaml:"log_records"`
	MetricsFile string             `yaml:"metrics_file"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Packages    []packages.Package `yaml:"packages"`
	LogLevel    string             `yaml:"log_level"`
	LogRecords  *bool              `yaml:"log_records"`
	MetricsFile string             `yaml:"metrics_file"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	PackagesStr *string
	LogLevel    *string
	MetricsFile *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Packages:   packages.Default(),
		LogLevel:   defaultLogLevel,
		LogRecords: true,
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
	if len(yamlCfg.Packages) > 0 {
		cfg.Packages = yamlCfg.Packages
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	if yamlCfg.LogRecords != nil {
		cfg.LogRecords = *yamlCfg.LogRecords
	}

	if yamlCfg.MetricsFile != "" {
		cfg.MetricsFile = yamlCfg.MetricsFile
	}
}

// applyEnvConfig applies environment variable configuration.
// Malformed values are ignored and the previous setting is kept.
func applyEnvConfig(cfg *Config) {
	if raw := strings.TrimSpace(os.Getenv("WORKOUT_PACKAGES")); raw != "" {
		batch, err := packages.Parse(raw)
		if err == nil {
			cfg.Packages = batch
		}
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if records := strings.TrimSpace(os.Getenv("LOG_RECORDS")); records != "" {
		if value, err := strconv.ParseBool(records); err == nil {
			cfg.LogRecords = value
		}
	}

	if path := strings.TrimSpace(os.Getenv("METRICS_FILE")); path != "" {
		cfg.MetricsFile = path
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.PackagesStr != nil && *overrides.PackagesStr != "" {
		batch, err := packages.Parse(*overrides.PackagesStr)
		if err != nil {
			return fmt.Errorf("parse packages: %w", err)
		}
		cfg.Packages = batch
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.MetricsFile != nil && *overrides.MetricsFile != "" {
		cfg.MetricsFile = *overrides.MetricsFile
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if len(cfg.Packages) == 0 {
		return fmt.Errorf("packages cannot be empty")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return nil
}

// Package config handles loading and managing resumate configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/resumate/resumate/pkg/scoring"
)

// Config is the top-level configuration for resumate.
type Config struct {
	Scoring  ScoringConfig  `yaml:"scoring"`
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	// DefaultRole is used by the CLI when --role is omitted and no
	// terminal is available for the interactive picker.
	DefaultRole string `yaml:"default_role"`
	// MinTextLength is the shortest extracted text surfaces will accept,
	// in characters.
	MinTextLength int                `yaml:"min_text_length"`
	Weights       map[string]float64 `yaml:"weights"`
}

// ServerConfig controls the HTTP service.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	APIKeys        []string `yaml:"api_keys"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	CacheSize      int      `yaml:"cache_size"`
	RescoreWorkers int      `yaml:"rescore_workers"`
	MaxBodyBytes   int64    `yaml:"max_body_bytes"`
}

// StorageConfig selects where analysis reports are archived.
type StorageConfig struct {
	Backend  string `yaml:"backend"` // local, s3, gcs
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"` // S3-compatible endpoint, optional
	Prefix   string `yaml:"prefix"`
	LocalDir string `yaml:"local_dir"`
}

// DatabaseConfig points at the Postgres analysis index.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	JSON  bool `yaml:"json"`
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			MinTextLength: 50,
			Weights:       map[string]float64{},
		},
		Server: ServerConfig{
			Addr:           ":8080",
			CacheSize:      256,
			RescoreWorkers: 4,
			MaxBodyBytes:   2 << 20,
		},
		Storage: StorageConfig{
			Backend:  "local",
			LocalDir: "./data",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if _, err := cfg.Weights(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Weights returns the default scoring weights with the configured
// overrides applied.
func (c *Config) Weights() (scoring.Weights, error) {
	w, err := scoring.Defaults().WithOverrides(c.Scoring.Weights)
	if err != nil {
		return scoring.Weights{}, fmt.Errorf("scoring.weights: %w", err)
	}
	return w, nil
}

// FindConfigFile looks for .resumate/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".resumate", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the per-user directory where the CLI keeps saved reports.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "resumate")
}

// ReportDir returns the directory for saved analysis reports.
func ReportDir() string {
	return filepath.Join(CacheDir(), "reports")
}

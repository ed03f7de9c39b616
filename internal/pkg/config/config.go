// Package config loads the pipeline configuration from a YAML file plus a
// handful of environment variables. Credentials are never embedded in source;
// the loader fails fast when a required value is missing.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgerrors "github.com/brokeratlas/broker-compare/internal/pkg/errors"
)

const (
	DefaultBatchSize       = 10
	DefaultBatchIntervalMS = 500
	DefaultArtifactDir     = "reports"
)

// UpsertKey selects the natural key for the loader's upsert.
type UpsertKey string

const (
	UpsertBySlug UpsertKey = "slug" // preferred
	UpsertByName UpsertKey = "name" // legacy variant
)

type Config struct {
	Input     InputConfig    `yaml:"input"`
	Artifacts ArtifactConfig `yaml:"artifacts"`
	Load      LoadConfig     `yaml:"load"`

	// Read from the environment, not the file.
	DatabaseURL string `yaml:"-"`
	LogLevel    string `yaml:"-"`
	LogFile     string `yaml:"-"`
}

type InputConfig struct {
	// Dir holds broker review pages as local HTML files.
	Dir string `yaml:"dir"`
	// URLs are fetched live in addition to the local files.
	URLs []string `yaml:"urls"`
}

type ArtifactConfig struct {
	Dir string `yaml:"dir"`
	// XLSX enables the spreadsheet summary next to the JSON artifacts.
	XLSX bool `yaml:"xlsx"`
}

type LoadConfig struct {
	BatchSize int `yaml:"batch_size"`
	// BatchIntervalMS is the fixed pause between upsert batches, in
	// milliseconds. There is no feedback from observed latency.
	BatchIntervalMS int       `yaml:"batch_interval_ms"`
	Key             UpsertKey `yaml:"key"`
	// DryRun validates and writes artifacts but skips the database.
	DryRun bool `yaml:"dry_run"`
}

// BatchInterval returns the inter-batch pause as a duration.
func (c LoadConfig) BatchInterval() time.Duration {
	return time.Duration(c.BatchIntervalMS) * time.Millisecond
}

// Load reads the YAML file at path, applies defaults and environment
// overrides, and validates the result. A missing file is not an error; the
// defaults read ./pages and upsert by slug in batches of 10.
func Load(path string) (Config, error) {
	cfg := Config{
		Input:     InputConfig{Dir: "pages"},
		Artifacts: ArtifactConfig{Dir: DefaultArtifactDir},
		Load: LoadConfig{
			BatchSize:       DefaultBatchSize,
			BatchIntervalMS: DefaultBatchIntervalMS,
			Key:             UpsertBySlug,
		},
	}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to defaults
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config file %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.LogFile = os.Getenv("LOG_FILE")

	if err := cfg.applyDefaultsAndValidate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyDefaultsAndValidate() error {
	if c.Load.BatchSize <= 0 {
		c.Load.BatchSize = DefaultBatchSize
	}
	if c.Load.BatchIntervalMS <= 0 {
		c.Load.BatchIntervalMS = DefaultBatchIntervalMS
	}
	if c.Artifacts.Dir == "" {
		c.Artifacts.Dir = DefaultArtifactDir
	}

	switch c.Load.Key {
	case UpsertBySlug, UpsertByName:
	case "":
		c.Load.Key = UpsertBySlug
	default:
		return fmt.Errorf("invalid load.key %q: must be %q or %q", c.Load.Key, UpsertBySlug, UpsertByName)
	}

	if c.Input.Dir == "" && len(c.Input.URLs) == 0 {
		return pkgerrors.ErrNoSources
	}

	if !c.Load.DryRun && c.DatabaseURL == "" {
		return pkgerrors.ErrMissingDatabase
	}

	return nil
}

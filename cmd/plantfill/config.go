package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"time"

	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/enrich"
	pfhttp "github.com/raingarden/plantfill/http"
	"github.com/raingarden/plantfill/normalize"
	"gopkg.in/yaml.v3"
)

// Config holds settings read from the optional YAML configuration file.
// Zero values mean "not set"; command-line flags override file values.
type Config struct {
	CacheDir           string        `yaml:"cache_dir"`
	Timeout            time.Duration `yaml:"timeout"`
	RequestsPerSecond  float64       `yaml:"requests_per_second"`
	Concurrency        int           `yaml:"concurrency"`
	UserAgent          string        `yaml:"user_agent"`
	AlternateUserAgent string        `yaml:"alternate_user_agent"`

	// ConditionPhrases maps whole condition phrases to their normalized
	// form, extending the built-in phrase table.
	ConditionPhrases map[string]string `yaml:"condition_phrases"`
}

// LoadConfig reads the YAML configuration at path.
// An empty path returns an empty Config. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, plantfill.Errorf(plantfill.EINVALID, "cannot read config %q: %v", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, plantfill.Errorf(plantfill.EINVALID, "invalid config %q: %v", path, err)
	}
	if cfg.RequestsPerSecond < 0 {
		return nil, plantfill.Errorf(plantfill.EINVALID, "invalid config %q: requests_per_second must not be negative", path)
	}
	return cfg, nil
}

// override replaces file values with flags given on the command line.
func (c *Config) override(cli *CLI) {
	if cli.CacheDir != "" {
		c.CacheDir = cli.CacheDir
	}
	if cli.Timeout > 0 {
		c.Timeout = cli.Timeout
	}
	if cli.RequestsPerSecond > 0 {
		c.RequestsPerSecond = cli.RequestsPerSecond
	}
}

// applyDefaults fills settings left unset by both file and flags.
func (c *Config) applyDefaults(cacheDir string) {
	if c.CacheDir == "" {
		c.CacheDir = cacheDir
	}
	if c.Timeout <= 0 {
		c.Timeout = pfhttp.DefaultFetchTimeout
	}
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = enrich.DefaultRequestsPerSecond
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
}

// Conditions returns the condition normalizer extended with the configured
// phrases.
func (c *Config) Conditions() normalize.Conditions {
	return normalize.NewConditions(c.ConditionPhrases)
}

// Package config loads the sitemeta configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DavideDaniel/research/internal/foundation/errors"
)

// CurrentVersion is the only configuration version this build understands.
const CurrentVersion = "1"

// Config is the top-level configuration document.
type Config struct {
	Version string        `yaml:"version"`
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	RSS     RSSConfig     `yaml:"rss"`
	State   StateConfig   `yaml:"state"`
	Git     GitConfig     `yaml:"git"`
	Watch   WatchConfig   `yaml:"watch"`
	Notify  NotifyConfig  `yaml:"notify"`
	Logging LoggingConfig `yaml:"logging"`
}

// SiteConfig describes the published site.
type SiteConfig struct {
	Host         string       `yaml:"host"` // origin, e.g. https://davidedaniel.github.io
	Base         string       `yaml:"base"` // mount path, e.g. /research/
	Title        string       `yaml:"title"`
	Description  string       `yaml:"description"`
	Author       AuthorConfig `yaml:"author"`
	Published    string       `yaml:"published"` // YYYY-MM-DD
	ContentRoots []string     `yaml:"content_roots"`
	// Head holds site-wide tags in the same shapes frontmatter "head" accepts.
	Head []any `yaml:"head,omitempty"`
}

// AuthorConfig is the identity credited in structured data.
type AuthorConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url,omitempty"`
}

// ContentConfig locates the markdown sources.
type ContentConfig struct {
	Dir        string   `yaml:"dir"`
	Extensions []string `yaml:"extensions"`
	Workers    int      `yaml:"workers"`
}

// OutputConfig locates generated artifacts.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// RSSConfig controls feed generation.
type RSSConfig struct {
	Enabled bool   `yaml:"enabled"`
	Limit   int    `yaml:"limit"`
	File    string `yaml:"file"`
}

// StateConfig points at the sqlite fingerprint store. An empty path disables it.
type StateConfig struct {
	Path string `yaml:"path"`
}

// GitConfig controls last-modified lookups from repository history. The
// repository is found by searching upward from the content dir.
type GitConfig struct {
	Enabled bool `yaml:"enabled"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Addr     string `yaml:"addr"`
	Debounce string `yaml:"debounce"`
	Refresh  string `yaml:"refresh"` // periodic rebuild interval
}

// NotifyConfig configures build-completed notifications over NATS.
type NotifyConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// LoggingConfig holds the raw logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads, expands, overrides, defaults and validates the configuration at path.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("configuration file not found").
				WithContext("path", path).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", path).Build()
	}
	return Parse(data)
}

// Parse builds a Config from YAML bytes. ${VAR} references are expanded
// before decoding and SITE_* variables override decoded values.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config").Fatal().Build()
	}
	if cfg.Version != "" && cfg.Version != CurrentVersion {
		return nil, errors.ConfigError(fmt.Sprintf("unsupported configuration version: %s (expected %s)", cfg.Version, CurrentVersion)).Build()
	}

	applyEnvOverrides(&cfg, os.LookupEnv)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

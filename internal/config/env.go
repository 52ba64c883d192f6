package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables consulted once at startup.
const (
	EnvHost        = "SITE_HOST"
	EnvBase        = "SITE_BASE"
	EnvName        = "SITE_NAME"
	EnvDescription = "SITE_DESCRIPTION"
	EnvAuthor      = "SITE_AUTHOR"
	EnvAuthorURL   = "SITE_AUTHOR_URL"
	EnvRSS         = "SITE_RSS"
	EnvNATSURL     = "SITE_NATS_URL"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads the first readable .env file. godotenv never overrides
// variables already present in the process environment.
func loadEnvFiles() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Failed to load env file", "file", name, "error", err)
			continue
		}
		slog.Debug("Loaded environment file", "file", name)
		return
	}
}

type lookupFunc func(string) (string, bool)

// applyEnvOverrides replaces file values with non-empty environment values.
// An unparsable SITE_RSS is ignored with a warning.
func applyEnvOverrides(cfg *Config, lookup lookupFunc) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(EnvHost, &cfg.Site.Host)
	str(EnvBase, &cfg.Site.Base)
	str(EnvName, &cfg.Site.Title)
	str(EnvDescription, &cfg.Site.Description)
	str(EnvAuthor, &cfg.Site.Author.Name)
	str(EnvAuthorURL, &cfg.Site.Author.URL)
	str(EnvNATSURL, &cfg.Notify.URL)

	if v, ok := lookup(EnvRSS); ok && strings.TrimSpace(v) != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			slog.Warn("Ignoring invalid boolean in environment",
				"variable", EnvRSS, "value", v, "error", err)
			return
		}
		cfg.RSS.Enabled = enabled
	}
}

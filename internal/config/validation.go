package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/seo"
)

// Validate checks the fields later stages rely on. It runs after defaults.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Site.Host)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.ConfigError("site.host must be an absolute http(s) origin").
			WithContext("host", c.Site.Host).Build()
	}
	if u.Path != "" && u.Path != "/" {
		return errors.ConfigError("site.host must not carry a path; use site.base").
			WithContext("host", c.Site.Host).Build()
	}
	if strings.TrimSpace(c.Site.Title) == "" {
		return errors.ConfigError("site.title is required").Build()
	}
	if _, err := c.PublishedDate(); err != nil {
		return errors.ConfigError("site.published must be YYYY-MM-DD").
			WithContext("published", c.Site.Published).WithCause(err).Build()
	}
	for _, root := range c.Site.ContentRoots {
		if seo.CleanBase(root) == "" {
			return errors.ConfigError("site.content_roots entries must not be empty").Build()
		}
	}
	for _, ext := range c.Content.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.ConfigError(fmt.Sprintf("content extension %q must start with a dot", ext)).Build()
		}
	}
	for name, raw := range map[string]string{"watch.debounce": c.Watch.Debounce, "watch.refresh": c.Watch.Refresh} {
		if d, err := time.ParseDuration(raw); err != nil || d <= 0 {
			return errors.ConfigError(fmt.Sprintf("%s must be a positive duration", name)).
				WithContext("value", raw).Build()
		}
	}
	if c.Notify.URL != "" && strings.TrimSpace(c.Notify.Subject) == "" {
		return errors.ConfigError("notify.subject is required when notify.url is set").Build()
	}
	return nil
}

// PublishedDate parses site.published; an empty value yields the zero time.
func (c *Config) PublishedDate() (time.Time, error) {
	if strings.TrimSpace(c.Site.Published) == "" {
		return time.Time{}, nil
	}
	return time.Parse(seo.DateLayout, strings.TrimSpace(c.Site.Published))
}

// DebounceDuration returns watch.debounce. Validate guarantees it parses.
func (c *Config) DebounceDuration() time.Duration {
	d, _ := time.ParseDuration(c.Watch.Debounce)
	return d
}

// RefreshInterval returns watch.refresh. Validate guarantees it parses.
func (c *Config) RefreshInterval() time.Duration {
	d, _ := time.ParseDuration(c.Watch.Refresh)
	return d
}

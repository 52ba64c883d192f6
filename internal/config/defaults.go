package config

// Default values used when the configuration leaves a field empty.
const (
	DefaultHost        = "https://davidedaniel.github.io"
	DefaultBase        = "/research/"
	DefaultTitle       = "Research Papers"
	DefaultDescription = "Research papers and technical notes"
	DefaultContentDir  = "docs"
	DefaultOutputDir   = "docs/.vitepress/dist"
	DefaultRSSLimit    = 20
	DefaultRSSFile     = "feed.xml"
	DefaultWatchAddr   = ":8080"
	DefaultDebounce    = "300ms"
	DefaultRefresh     = "1h"
	DefaultSubject     = "sitemeta.build.completed"
	DefaultWorkers     = 4
)

// DefaultContentRoots are the sections whose pages are articles.
var DefaultContentRoots = []string{"papers"}

// DefaultExtensions are the content file extensions discovery picks up.
var DefaultExtensions = []string{".md"}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	s := &cfg.Site
	if s.Host == "" {
		s.Host = DefaultHost
	}
	if s.Base == "" {
		s.Base = DefaultBase
	}
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.Description == "" {
		s.Description = DefaultDescription
	}
	if len(s.ContentRoots) == 0 {
		s.ContentRoots = append([]string(nil), DefaultContentRoots...)
	}

	if cfg.Content.Dir == "" {
		cfg.Content.Dir = DefaultContentDir
	}
	if len(cfg.Content.Extensions) == 0 {
		cfg.Content.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if cfg.Content.Workers <= 0 {
		cfg.Content.Workers = DefaultWorkers
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = DefaultOutputDir
	}
	if cfg.RSS.Limit <= 0 {
		cfg.RSS.Limit = DefaultRSSLimit
	}
	if cfg.RSS.File == "" {
		cfg.RSS.File = DefaultRSSFile
	}
	if cfg.Watch.Addr == "" {
		cfg.Watch.Addr = DefaultWatchAddr
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = DefaultDebounce
	}
	if cfg.Watch.Refresh == "" {
		cfg.Watch.Refresh = DefaultRefresh
	}
	if cfg.Notify.Subject == "" {
		cfg.Notify.Subject = DefaultSubject
	}
	cfg.Logging.Level = string(NormalizeLogLevel(cfg.Logging.Level))
	cfg.Logging.Format = string(NormalizeLogFormat(cfg.Logging.Format))
}

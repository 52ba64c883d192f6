package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DavideDaniel/research/internal/foundation/errors"
)

// Init writes an example configuration to path. An existing file is kept unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).Build()
	}

	example := Config{
		Version: CurrentVersion,
		Site: SiteConfig{
			Host:         DefaultHost,
			Base:         DefaultBase,
			Title:        DefaultTitle,
			Description:  DefaultDescription,
			Author:       AuthorConfig{Name: "${SITE_AUTHOR}", URL: "${SITE_AUTHOR_URL}"},
			Published:    "2026-01-01",
			ContentRoots: DefaultContentRoots,
			Head: []any{
				[]any{"meta", map[string]any{"name": "author", "content": "${SITE_AUTHOR}"}},
				[]any{"meta", map[string]any{"name": "keywords", "content": "research, papers"}},
			},
		},
		Content: ContentConfig{Dir: DefaultContentDir, Extensions: DefaultExtensions, Workers: DefaultWorkers},
		Output:  OutputConfig{Dir: DefaultOutputDir},
		RSS:     RSSConfig{Enabled: false, Limit: DefaultRSSLimit, File: DefaultRSSFile},
		State:   StateConfig{Path: ".sitemeta/state.db"},
		Git:     GitConfig{Enabled: true},
		Watch:   WatchConfig{Addr: DefaultWatchAddr, Debounce: DefaultDebounce, Refresh: DefaultRefresh},
		Notify:  NotifyConfig{URL: "${SITE_NATS_URL}", Subject: DefaultSubject},
		Logging: LoggingConfig{Level: string(LogLevelInfo), Format: string(LogFormatText)},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example config").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).Build()
	}
	return nil
}

package config

import (
	"time"

	"github.com/DavideDaniel/research/internal/seo"
)

// SEOSite builds the immutable site description for one build.
func (c *Config) SEOSite(buildDate time.Time) seo.Site {
	published, _ := c.PublishedDate()
	return seo.Site{
		HostBase:     c.Site.Host,
		PathBase:     c.Site.Base,
		Name:         c.Site.Title,
		Description:  c.Site.Description,
		Author:       seo.Identity{Name: c.Site.Author.Name, URL: c.Site.Author.URL},
		ContentRoots: append([]string(nil), c.Site.ContentRoots...),
		Published:    published,
		BuildDate:    buildDate,
	}
}

// SiteHead returns the configured site-wide head tags.
func (c *Config) SiteHead() []seo.Tag {
	return seo.HeadFromFrontMatter(c.Site.Head)
}

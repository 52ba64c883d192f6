package seo

import "time"

// DateLayout is the ISO calendar date layout used for structured-data dates.
const DateLayout = "2006-01-02"

// Identity names the author or publisher of the site's articles.
type Identity struct {
	Name string
	URL  string
}

// Site is the process-wide site description. It is built once at startup and
// passed by value to every component; nothing mutates it during a build.
type Site struct {
	HostBase    string // e.g. "https://davidedaniel.github.io"
	PathBase    string // e.g. "/research"
	Name        string
	Description string
	Author      Identity

	// ContentRoots are the leading path segments under which non-index pages
	// are articles (e.g. "papers").
	ContentRoots []string

	Published time.Time // fixed publication date for articles
	BuildDate time.Time // date of the running build; zero means today
}

// BuildDay returns the build date as an ISO calendar date.
func (s Site) BuildDay() string {
	d := s.BuildDate
	if d.IsZero() {
		d = time.Now()
	}
	return d.UTC().Format(DateLayout)
}

// PublishedDay returns the fixed publication date, or "" when unset.
func (s Site) PublishedDay() string {
	if s.Published.IsZero() {
		return ""
	}
	return s.Published.UTC().Format(DateLayout)
}

// Classifier returns a classifier over the site's content roots.
func (s Site) Classifier() *Classifier {
	return NewClassifier(s.ContentRoots)
}

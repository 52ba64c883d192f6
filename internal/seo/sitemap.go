package seo

import (
	"strings"
	"time"
)

// ChangeFrequency is the sitemap <changefreq> value.
type ChangeFrequency string

const (
	ChangeAlways  ChangeFrequency = "always"
	ChangeHourly  ChangeFrequency = "hourly"
	ChangeDaily   ChangeFrequency = "daily"
	ChangeWeekly  ChangeFrequency = "weekly"
	ChangeMonthly ChangeFrequency = "monthly"
	ChangeYearly  ChangeFrequency = "yearly"
	ChangeNever   ChangeFrequency = "never"
)

// Route priorities.
const (
	PriorityRoot    = 1.0
	PriorityContent = 0.8
	PriorityDefault = 0.6
)

// RouteEntry is one sitemap record.
type RouteEntry struct {
	URL             string
	ChangeFrequency ChangeFrequency
	Priority        float64
	LastMod         time.Time // zero when unknown
}

// RewriteRoute places entry under pathBase and assigns its change frequency
// and priority.
//
// The URL is cleaned the way Normalize cleans content paths: an absolute URL
// that already starts with the base is not prefixed again, and index
// segments, content extensions and dot segments are removed. Priority depends
// only on the resulting URL, so rewriting an entry twice yields the same entry
// as rewriting it once.
func RewriteRoute(pathBase string, entry RouteEntry, c *Classifier) RouteEntry {
	base := splitSegments(pathBase)
	segs := baseFreeSegments(base, entry.URL)

	out := entry
	out.URL = joinURLPath(base, segs)
	out.ChangeFrequency = ChangeMonthly
	out.Priority = RoutePriority(joinURLPath(nil, segs), c)
	return out
}

// RewriteRoutes applies RewriteRoute to every entry.
func RewriteRoutes(site Site, entries []RouteEntry) []RouteEntry {
	c := site.Classifier()
	out := make([]RouteEntry, len(entries))
	for i, e := range entries {
		out[i] = RewriteRoute(site.PathBase, e, c)
	}
	return out
}

// RoutePriority ranks a base-free route path: the root is 1.0, anything under
// a content root 0.8, everything else 0.6.
func RoutePriority(routePath string, c *Classifier) float64 {
	segs := splitSegments(routePath)
	if len(segs) == 0 || (len(segs) == 1 && IsIndexSegment(stripContentExtension(segs[0]))) {
		return PriorityRoot
	}
	if c.underRoot(segs, false) {
		return PriorityContent
	}
	return PriorityDefault
}

// RouteForPage returns the base-free route of a content path. The URL is
// relative, so RewriteRoute always prefixes it with the base, even when the
// content tree has a directory named like the base.
func RouteForPage(relativePath string) RouteEntry {
	return RouteEntry{URL: strings.TrimPrefix(Normalize("", relativePath), "/")}
}

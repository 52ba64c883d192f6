package seo

import "strings"

// ContentKind classifies a page for metadata decisions.
type ContentKind int

const (
	// KindPage is a regular page outside every content root.
	KindPage ContentKind = iota
	// KindRoot is the top-level index of the site.
	KindRoot
	// KindSectionIndex is any other index page, inside or outside a content root.
	KindSectionIndex
	// KindArticle is a non-index page under a content root.
	KindArticle
)

func (k ContentKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindSectionIndex:
		return "section_index"
	case KindArticle:
		return "article"
	default:
		return "page"
	}
}

// Classifier decides the ContentKind of content paths and routes.
type Classifier struct {
	roots [][]string
}

// NewClassifier builds a classifier from content-root prefixes such as "papers"
// or "research/papers". Empty roots are ignored.
func NewClassifier(roots []string) *Classifier {
	c := &Classifier{}
	for _, r := range roots {
		if segs := splitSegments(r); len(segs) > 0 {
			c.roots = append(c.roots, segs)
		}
	}
	return c
}

// Classify returns the kind of a content path relative to the content root.
func (c *Classifier) Classify(relativePath string) ContentKind {
	segs, isIndex := contentPathSegments(relativePath)
	switch {
	case len(segs) == 0:
		return KindRoot
	case isIndex:
		return KindSectionIndex
	case c.underRoot(segs, true):
		return KindArticle
	default:
		return KindPage
	}
}

// UnderContentRoot reports whether a base-free URL path lies under a content root.
func (c *Classifier) UnderContentRoot(urlPath string) bool {
	return c.underRoot(splitSegments(urlPath), false)
}

// underRoot matches segs against the roots; strict requires at least one
// segment below the root itself.
func (c *Classifier) underRoot(segs []string, strict bool) bool {
	if c == nil {
		return false
	}
	for _, root := range c.roots {
		if strict && len(segs) <= len(root) {
			continue
		}
		if hasSegmentPrefix(segs, root) {
			return true
		}
	}
	return false
}

// Roots returns the configured content roots as slash-joined strings.
func (c *Classifier) Roots() []string {
	out := make([]string, 0, len(c.roots))
	for _, r := range c.roots {
		out = append(out, strings.Join(r, "/"))
	}
	return out
}

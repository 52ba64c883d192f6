package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/DavideDaniel/research/internal/frontmatter"
	"github.com/DavideDaniel/research/internal/logfields"
	"github.com/DavideDaniel/research/internal/markdown"
	"github.com/DavideDaniel/research/internal/seo"
)

// parseFrontMatter splits the source. Malformed frontmatter is logged and the
// whole source is treated as body so one bad page never stops a build.
func parseFrontMatter(doc *Document) error {
	parsed, err := frontmatter.Parse(doc.Content)
	if err != nil {
		slog.Warn("Ignoring malformed frontmatter",
			logfields.Page(doc.RelativePath()),
			logfields.Error(err))
		doc.Page.FrontMatter = map[string]any{}
		doc.Body = doc.Content
		return nil
	}

	doc.Page.FrontMatter = parsed.Fields
	doc.Body = parsed.Body
	doc.HadFrontMatter = parsed.Had
	doc.Page.Head = append(doc.Page.Head, seo.HeadFromFrontMatter(parsed.Fields["head"])...)
	doc.Date = dateField(parsed.Fields["date"])
	return nil
}

// resolveTitle takes the frontmatter title, falling back to the first H1.
func resolveTitle(doc *Document) error {
	outline := markdown.Parse(doc.Body)
	doc.Summary = outline.Summary

	if t := frontmatter.String(doc.Page.FrontMatter, "title"); t != "" {
		doc.Page.Title = t
		return nil
	}
	doc.Page.Title = outline.Title
	return nil
}

func classify(c *seo.Classifier) FileTransform {
	return func(doc *Document) error {
		doc.Kind = c.Classify(doc.RelativePath())
		return nil
	}
}

func canonicalize(site seo.Site) FileTransform {
	return func(doc *Document) error {
		doc.URLPath = seo.Normalize(site.PathBase, doc.RelativePath())
		doc.Canonical = seo.CanonicalURL(site, doc.RelativePath())
		return nil
	}
}

func fingerprint(doc *Document) error {
	fp, err := frontmatter.Fingerprint(doc.Page.FrontMatter, doc.Body)
	if err != nil {
		return fmt.Errorf("fingerprint: %w", err)
	}
	doc.Fingerprint = fp
	return nil
}

func injectHead(site seo.Site) FileTransform {
	return func(doc *Document) error {
		doc.Injected = seo.InjectMetadata(&doc.Page, site, doc.Canonical)
		return nil
	}
}

func dateField(v any) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d.UTC()
	case string:
		if t, err := time.Parse(seo.DateLayout, d); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

package seo

import (
	"fmt"
	"strings"
)

// ResolvedTitle returns the page title, or the site name when the page has none.
func ResolvedTitle(page *Page, site Site) string {
	if t := strings.TrimSpace(page.Title); t != "" {
		return t
	}
	return site.Name
}

// SocialTitle is the title used by Open Graph and Twitter tags.
func SocialTitle(page *Page, site Site) string {
	if t := strings.TrimSpace(page.Title); t != "" {
		return fmt.Sprintf("%s | %s", t, site.Name)
	}
	return site.Name
}

// ResolvedDescription returns the frontmatter description, or the site description.
func ResolvedDescription(page *Page, site Site) string {
	if d := page.Description(); d != "" {
		return d
	}
	return site.Description
}

// InjectMetadata appends canonical, Open Graph, Twitter and (for articles)
// structured-data tags to page.Head and returns the appended tags.
//
// The canonical link is always first. Existing head entries are kept.
func InjectMetadata(page *Page, site Site, canonicalURL string) []Tag {
	title := ResolvedTitle(page, site)
	social := SocialTitle(page, site)
	description := ResolvedDescription(page, site)

	tags := []Tag{
		LinkTag("canonical", canonicalURL),
		PropertyMeta("og:title", social),
		PropertyMeta("og:description", description),
		PropertyMeta("og:url", canonicalURL),
		NameMeta("twitter:title", social),
		NameMeta("twitter:description", description),
	}

	if site.Classifier().Classify(page.RelativePath) == KindArticle {
		article := NewTechArticle(site, title, description, canonicalURL)
		tags = append(tags, ScriptTag(LDJSONType, article.Marshal()))
	}

	page.Head = append(page.Head, tags...)
	return tags
}

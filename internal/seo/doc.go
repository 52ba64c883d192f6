// Package seo derives per-page search and social metadata for the site.
//
// It holds the three pure transforms of a build: Normalize turns a content
// path into a canonical URL path under the site's mount base, InjectMetadata
// appends canonical, Open Graph, Twitter and JSON-LD head tags to a page, and
// RewriteRoute places sitemap routes under the base and ranks them. None of
// them perform I/O or return errors; every input has a defined result.
package seo

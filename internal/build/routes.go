package build

import (
	"github.com/DavideDaniel/research/internal/pipeline"
	"github.com/DavideDaniel/research/internal/seo"
)

// routesFor builds one sitemap route per document and rewrites all of them
// under the site base. No document is left out.
func routesFor(site seo.Site, documents []*pipeline.Document) []seo.RouteEntry {
	entries := make([]seo.RouteEntry, 0, len(documents))
	for _, d := range documents {
		e := seo.RouteForPage(d.RelativePath())
		e.LastMod = d.LastMod
		entries = append(entries, e)
	}
	return seo.RewriteRoutes(site, entries)
}

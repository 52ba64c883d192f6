package build

import (
	"cmp"
	"log/slog"

	"github.com/DavideDaniel/research/internal/config"
	"github.com/DavideDaniel/research/internal/logfields"
	"github.com/DavideDaniel/research/internal/render"
	"github.com/DavideDaniel/research/internal/seo"
)

func (s *Service) writeArtifacts(cfg *config.Config, site seo.Site, opts Options, report *Report) error {
	dir := cmp.Or(opts.OutputDir, cfg.Output.Dir)

	manifest := render.HeadManifest{
		BuildID:     report.BuildID,
		GeneratedAt: report.StartTime.UTC(),
		Site:        render.SiteInfo{Name: site.Name, Host: site.HostBase, Base: seo.CleanBase(site.PathBase) + "/"},
		SiteHead:    cfg.SiteHead(),
		Pages:       make([]render.PageHead, 0, len(report.Documents)),
	}
	for _, d := range report.Documents {
		ph, err := render.NewPageHead(d.RelativePath(), d.Canonical, d.Kind, d.LastMod, d.Injected)
		if err != nil {
			return err
		}
		manifest.Pages = append(manifest.Pages, ph)
	}

	headPath, err := render.WriteHeadManifest(dir, manifest)
	if err != nil {
		return err
	}
	report.Artifacts = append(report.Artifacts, headPath)

	sitemapPath, err := render.WriteSitemap(dir, site.HostBase, report.Routes)
	if err != nil {
		return err
	}
	report.Artifacts = append(report.Artifacts, sitemapPath)

	if cfg.RSS.Enabled {
		feedPath, err := render.WriteFeed(dir, cfg.RSS.File, site, feedItems(site, report), cfg.RSS.Limit)
		if err != nil {
			return err
		}
		report.Artifacts = append(report.Artifacts, feedPath)
	}

	for _, a := range report.Artifacts {
		slog.Debug("Wrote artifact", logfields.BuildID(report.BuildID), logfields.File(a))
	}
	return nil
}

// feedItems lists article pages. The item date is the frontmatter date, or
// the last-modified date when the page has none.
func feedItems(site seo.Site, report *Report) []render.FeedItem {
	var items []render.FeedItem
	for _, d := range report.Documents {
		if d.Kind != seo.KindArticle {
			continue
		}
		date := d.Date
		if date.IsZero() {
			date = d.LastMod
		}
		description := d.Page.Description()
		if description == "" {
			description = cmp.Or(d.Summary, site.Description)
		}
		items = append(items, render.FeedItem{
			Title:       seo.ResolvedTitle(&d.Page, site),
			URL:         d.Canonical,
			Description: description,
			Date:        date,
		})
	}
	return items
}

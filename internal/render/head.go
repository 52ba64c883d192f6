package render

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/seo"
)

// HeadManifestFile is the manifest file name inside the output directory.
const HeadManifestFile = "head.json"

// HeadManifest lists the head tags of every page for the site framework to merge.
type HeadManifest struct {
	BuildID     string     `json:"build_id"`
	GeneratedAt time.Time  `json:"generated_at"`
	Site        SiteInfo   `json:"site"`
	SiteHead    []seo.Tag  `json:"site_head,omitempty"`
	SiteHTML    string     `json:"site_html,omitempty"`
	Pages       []PageHead `json:"pages"`
}

// SiteInfo echoes the site identity the manifest was built for.
type SiteInfo struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Base string `json:"base"`
}

// PageHead is the head contribution of one page.
type PageHead struct {
	Path    string    `json:"path"`
	URL     string    `json:"url"`
	Kind    string    `json:"kind"`
	LastMod string    `json:"last_mod,omitempty"`
	Tags    []seo.Tag `json:"tags"`
	HTML    string    `json:"html"`
}

// NewPageHead renders tags for one page.
func NewPageHead(relativePath, url string, kind seo.ContentKind, lastMod time.Time, tags []seo.Tag) (PageHead, error) {
	rendered, err := RenderTags(tags)
	if err != nil {
		return PageHead{}, errors.WrapError(err, errors.CategoryBuild, "failed to render head tags").
			WithContext("page", relativePath).Build()
	}
	ph := PageHead{Path: relativePath, URL: url, Kind: kind.String(), Tags: tags, HTML: rendered}
	if !lastMod.IsZero() {
		ph.LastMod = lastMod.UTC().Format(seo.DateLayout)
	}
	return ph, nil
}

// WriteHeadManifest writes m as indented JSON into dir and returns the file path.
func WriteHeadManifest(dir string, m HeadManifest) (string, error) {
	if len(m.SiteHead) > 0 && m.SiteHTML == "" {
		rendered, err := RenderTags(m.SiteHead)
		if err != nil {
			return "", errors.WrapError(err, errors.CategoryBuild, "failed to render site head").Build()
		}
		m.SiteHTML = rendered
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryInternal, "failed to encode head manifest").Build()
	}
	path := filepath.Join(dir, HeadManifestFile)
	return path, writeFileAtomic(path, append(data, '\n'))
}

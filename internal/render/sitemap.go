package render

import (
	"bytes"
	"encoding/xml"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/seo"
)

// SitemapFile is the sitemap file name inside the output directory.
const SitemapFile = "sitemap.xml"

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap encodes rewritten routes as a sitemap document. host is the origin
// prepended to each root-relative route URL.
func Sitemap(host string, routes []seo.RouteEntry) ([]byte, error) {
	origin := strings.TrimRight(host, "/")
	set := sitemapURLSet{XMLNS: sitemapNS, URLs: make([]sitemapURL, 0, len(routes))}
	for _, r := range routes {
		u := sitemapURL{
			Loc:        origin + r.URL,
			ChangeFreq: string(r.ChangeFrequency),
			Priority:   strconv.FormatFloat(r.Priority, 'f', 1, 64),
		}
		if !r.LastMod.IsZero() {
			u.LastMod = r.LastMod.UTC().Format(seo.DateLayout)
		}
		set.URLs = append(set.URLs, u)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to encode sitemap").Build()
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteSitemap writes sitemap.xml into dir and returns the file path.
func WriteSitemap(dir, host string, routes []seo.RouteEntry) (string, error) {
	data, err := Sitemap(host, routes)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, SitemapFile)
	return path, writeFileAtomic(path, data)
}

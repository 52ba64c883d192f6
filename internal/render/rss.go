package render

import (
	"bytes"
	"encoding/xml"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/seo"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// FeedItem is one article offered to the feed.
type FeedItem struct {
	Title       string
	URL         string // absolute canonical URL
	Description string
	Date        time.Time
}

// Feed encodes items as an RSS 2.0 channel for site, newest first. A
// positive limit caps the number of items.
func Feed(site seo.Site, items []FeedItem, limit int) ([]byte, error) {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b FeedItem) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.URL, b.URL)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]rssItem, 0, len(sorted))
	for _, it := range sorted {
		item := rssItem{Title: it.Title, Link: it.URL, Description: it.Description, GUID: it.URL}
		if !it.Date.IsZero() {
			item.PubDate = it.Date.UTC().Format(time.RFC1123Z)
		}
		out = append(out, item)
	}

	build := site.BuildDate
	if build.IsZero() {
		build = time.Now()
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:         site.Name,
			Link:          seo.CanonicalURL(site, ""),
			Description:   site.Description,
			LastBuildDate: build.UTC().Format(time.RFC1123Z),
			Items:         out,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to encode feed").Build()
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteFeed writes the feed to dir/name and returns the file path.
func WriteFeed(dir, name string, site seo.Site, items []FeedItem, limit int) (string, error) {
	data, err := Feed(site, items, limit)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	return path, writeFileAtomic(path, data)
}

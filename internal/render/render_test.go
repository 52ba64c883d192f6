package render

import (
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavideDaniel/research/internal/seo"
)

func testSite() seo.Site {
	return seo.Site{
		HostBase:     "https://davidedaniel.github.io",
		PathBase:     "/research/",
		Name:         "Research Papers",
		Description:  "Site description",
		ContentRoots: []string{"papers"},
		BuildDate:    time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderTags(t *testing.T) {
	out, err := RenderTags([]seo.Tag{
		seo.LinkTag("canonical", "https://x.io/research/"),
		seo.PropertyMeta("og:title", `A "quoted" & title`),
		seo.ScriptTag(seo.LDJSONType, `{"headline":"</script><b>"}`),
	})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `<link rel="canonical" href="https://x.io/research/"/>`, lines[0])
	assert.Equal(t, `<meta property="og:title" content="A &#34;quoted&#34; &amp; title"/>`, lines[1])
	assert.Equal(t, `<script type="application/ld+json">{"headline":"<\/script><b>"}</script>`, lines[2])
}

func TestSitemap(t *testing.T) {
	lastMod := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	site := testSite()
	routes := seo.RewriteRoutes(site, []seo.RouteEntry{
		seo.RouteForPage("index.md"),
		{URL: "/papers/sdd-frameworks", LastMod: lastMod},
		seo.RouteForPage("about.md"),
	})

	data, err := Sitemap(site.HostBase+"/", routes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(data, &set))
	assert.Equal(t, sitemapNS, set.XMLNS)
	assert.Equal(t, []sitemapURL{
		{Loc: "https://davidedaniel.github.io/research/", ChangeFreq: "monthly", Priority: "1.0"},
		{Loc: "https://davidedaniel.github.io/research/papers/sdd-frameworks", LastMod: "2026-04-02", ChangeFreq: "monthly", Priority: "0.8"},
		{Loc: "https://davidedaniel.github.io/research/about", ChangeFreq: "monthly", Priority: "0.6"},
	}, set.URLs)
}

func TestFeed_NewestFirstWithLimit(t *testing.T) {
	site := testSite()
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }
	items := []FeedItem{
		{Title: "Old", URL: "https://x/research/papers/old", Date: day(1)},
		{Title: "New", URL: "https://x/research/papers/new", Date: day(9)},
		{Title: "Mid", URL: "https://x/research/papers/mid", Date: day(5)},
	}

	data, err := Feed(site, items, 2)
	require.NoError(t, err)

	var feed rssXML
	require.NoError(t, xml.Unmarshal(data, &feed))
	assert.Equal(t, "2.0", feed.Version)
	assert.Equal(t, "Research Papers", feed.Channel.Title)
	assert.Equal(t, "https://davidedaniel.github.io/research/", feed.Channel.Link)
	require.Len(t, feed.Channel.Items, 2)
	assert.Equal(t, "New", feed.Channel.Items[0].Title)
	assert.Equal(t, "Mid", feed.Channel.Items[1].Title)
	assert.Equal(t, day(9).Format(time.RFC1123Z), feed.Channel.Items[0].PubDate)
	assert.Equal(t, items[1].URL, feed.Channel.Items[0].GUID)
}

func TestWriteArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	site := testSite()

	page, err := NewPageHead("papers/a.md", "https://x/research/papers/a", seo.KindArticle,
		time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), []seo.Tag{seo.LinkTag("canonical", "https://x/research/papers/a")})
	require.NoError(t, err)
	assert.Equal(t, "2026-04-02", page.LastMod)
	assert.Equal(t, "article", page.Kind)

	headPath, err := WriteHeadManifest(dir, HeadManifest{
		BuildID:  "b1",
		Site:     SiteInfo{Name: site.Name, Host: site.HostBase, Base: site.PathBase},
		SiteHead: []seo.Tag{seo.NameMeta("author", "Davide Daniel")},
		Pages:    []PageHead{page},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(headPath)
	require.NoError(t, err)
	var decoded HeadManifest
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "b1", decoded.BuildID)
	assert.Equal(t, `<meta name="author" content="Davide Daniel"/>`, decoded.SiteHTML)
	require.Len(t, decoded.Pages, 1)
	assert.Equal(t, `<link rel="canonical" href="https://x/research/papers/a"/>`, decoded.Pages[0].HTML)

	sitemapPath, err := WriteSitemap(dir, site.HostBase, nil)
	require.NoError(t, err)
	assert.FileExists(t, sitemapPath)

	feedPath, err := WriteFeed(dir, "feed.xml", site, nil, 0)
	require.NoError(t, err)
	assert.FileExists(t, feedPath)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temp files are left behind")
}

package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRewriteRoute(t *testing.T) {
	c := NewClassifier([]string{"papers"})

	tests := []struct {
		name         string
		base         string
		url          string
		wantURL      string
		wantPriority float64
	}{
		{"root", "/research/", "", "/research/", PriorityRoot},
		{"root slash", "/research", "/", "/research/", PriorityRoot},
		{"root index html", "/research", "index.html", "/research/", PriorityRoot},
		{"papers listing", "/research", "papers/", "/research/papers", PriorityContent},
		{"source extension", "/research", "papers/x.md", "/research/papers/x", PriorityContent},
		{"nested index html", "/research", "/papers/sdd/index.html", "/research/papers/sdd", PriorityContent},
		{"dot segments under base", "/research", "/research/papers/..", "/research/", PriorityRoot},
		{"dot stem", "/research", "papers/...md", "/research/", PriorityRoot},
		{"paper", "/research", "/papers/sdd-frameworks/getting-started", "/research/papers/sdd-frameworks/getting-started", PriorityContent},
		{"other page", "/research", "about", "/research/about", PriorityDefault},
		{"already based", "/research", "/research/papers/x", "/research/papers/x", PriorityContent},
		{"duplicate separators", "/research/", "//papers//x", "/research/papers/x", PriorityContent},
		{"base lookalike", "/research", "/researchers/x", "/research/researchers/x", PriorityDefault},
		{"empty base", "", "papers/x", "/papers/x", PriorityContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteRoute(tt.base, RouteEntry{URL: tt.url}, c)
			assert.Equal(t, tt.wantURL, got.URL)
			assert.InDelta(t, tt.wantPriority, got.Priority, 1e-9)
			assert.Equal(t, ChangeMonthly, got.ChangeFrequency)
		})
	}
}

func TestRewriteRoutes_AppliesToEveryRoute(t *testing.T) {
	site := testSite()
	in := []RouteEntry{
		RouteForPage("index.md"),
		RouteForPage("papers/index.md"),
		RouteForPage("papers/sdd-frameworks/getting-started.md"),
		RouteForPage("about.md"),
	}

	out := RewriteRoutes(site, in)
	require.Len(t, out, len(in))
	assert.Equal(t, "/research/", out[0].URL)
	assert.Equal(t, "/research/papers", out[1].URL)
	assert.Equal(t, "/research/papers/sdd-frameworks/getting-started", out[2].URL)
	assert.Equal(t, "/research/about", out[3].URL)

	assert.InDelta(t, 1.0, out[0].Priority, 1e-9)
	assert.InDelta(t, 0.8, out[1].Priority, 1e-9)
	assert.InDelta(t, 0.8, out[2].Priority, 1e-9)
	assert.InDelta(t, 0.6, out[3].Priority, 1e-9)

	assert.Equal(t, "", in[0].URL, "input entries are not modified")
}

func TestRewriteRoutes_MatchesCanonicalPath(t *testing.T) {
	site := testSite()
	for _, rel := range []string{
		"index.md",
		"research/index.md",
		"research/x.md",
		"papers/sdd-frameworks/index.md",
	} {
		out := RewriteRoutes(site, []RouteEntry{RouteForPage(rel)})
		assert.Equal(t, Normalize(site.PathBase, rel), out[0].URL, rel)
	}
}

func TestRewriteRoute_Idempotent(t *testing.T) {
	c := NewClassifier([]string{"papers"})
	rapid.Check(t, func(t *rapid.T) {
		base := genBase.Draw(t, "base")
		url := genPath.Draw(t, "url")

		once := RewriteRoute(base, RouteEntry{URL: url}, c)
		twice := RewriteRoute(base, once, c)
		if once != twice {
			t.Fatalf("RewriteRoute(%q, %q) = %+v, again = %+v", base, url, once, twice)
		}
	})
}

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavideDaniel/research/internal/docs"
	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/seo"
)

func testSite() seo.Site {
	return seo.Site{
		HostBase:     "https://davidedaniel.github.io",
		PathBase:     "/research/",
		Name:         "Research Papers",
		Description:  "Site description",
		Author:       seo.Identity{Name: "Davide Daniel"},
		ContentRoots: []string{"papers"},
		Published:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		BuildDate:    time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	}
}

func writeTree(t *testing.T, files map[string]string) []docs.DocFile {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	found, err := docs.Discover(root, []string{".md"})
	require.NoError(t, err)
	return found
}

func byPath(processed []*Document) map[string]*Document {
	out := make(map[string]*Document, len(processed))
	for _, d := range processed {
		out[d.RelativePath()] = d
	}
	return out
}

func TestProcess_EndToEnd(t *testing.T) {
	files := writeTree(t, map[string]string{
		"index.md": "# Home\n",
		"papers/sdd-frameworks/index.md": "---\ntitle: SDD Frameworks\n---\n# Ignored\n",
		"papers/sdd-frameworks/overview.md": "---\ntitle: Overview\ndescription: X\ndate: 2026-02-01\n" +
			"head:\n  - [meta, {name: keywords, content: sdd}]\n---\nFirst paragraph.\n",
		"about.md": "# About me\n\nHello there.\n",
	})

	out, err := NewProcessor(testSite(), WithWorkers(2)).Process(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, out, len(files))
	for i, f := range files {
		assert.Equal(t, f.RelativePath, out[i].RelativePath(), "order must follow input")
	}

	pages := byPath(out)

	home := pages["index.md"]
	assert.Equal(t, seo.KindRoot, home.Kind)
	assert.Equal(t, "/research/", home.URLPath)
	assert.Equal(t, "Home", home.Page.Title)
	assert.Len(t, home.Injected, 6)

	section := pages["papers/sdd-frameworks/index.md"]
	assert.Equal(t, seo.KindSectionIndex, section.Kind)
	assert.Equal(t, "https://davidedaniel.github.io/research/papers/sdd-frameworks", section.Canonical)
	assert.Equal(t, "SDD Frameworks", section.Page.Title)
	assert.Len(t, section.Injected, 6)

	article := pages["papers/sdd-frameworks/overview.md"]
	assert.Equal(t, seo.KindArticle, article.Kind)
	assert.Equal(t, "Overview", article.Page.Title)
	assert.Equal(t, "First paragraph.", article.Summary)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), article.Date)
	assert.NotEmpty(t, article.Fingerprint)
	require.Len(t, article.Injected, 7)
	assert.Equal(t, seo.TagScript, article.Injected[6].Kind)
	// frontmatter head comes first, injected tags are appended after it
	require.Len(t, article.Page.Head, 8)
	assert.Equal(t, "keywords", article.Page.Head[0].Attr("name"))
	assert.Equal(t, "canonical", article.Page.Head[1].Attr("rel"))

	about := pages["about.md"]
	assert.Equal(t, seo.KindPage, about.Kind)
	assert.Equal(t, "About me", about.Page.Title)
	assert.Equal(t, "About me | Research Papers", about.Injected[1].Attr("content"))
}

func TestProcess_MalformedFrontMatterIsTolerated(t *testing.T) {
	files := writeTree(t, map[string]string{
		"papers/broken.md": "---\ntitle: never closed\n# Heading\n",
	})

	out, err := NewProcessor(testSite()).Process(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Page.FrontMatter)
	assert.Equal(t, "Heading", out[0].Page.Title)
	assert.Len(t, out[0].Injected, 7)
}

func TestProcess_ManyPagesKeepOrder(t *testing.T) {
	tree := map[string]string{}
	for i := range 40 {
		tree[fmt.Sprintf("papers/p%02d.md", i)] = fmt.Sprintf("# Paper %d\n", i)
	}
	files := writeTree(t, tree)

	out, err := NewProcessor(testSite(), WithWorkers(3)).Process(context.Background(), files)
	require.NoError(t, err)
	for i, d := range out {
		assert.Equal(t, fmt.Sprintf("Paper %d", i), d.Page.Title)
	}
}

func TestProcess_MissingFile(t *testing.T) {
	files := []docs.DocFile{{Path: filepath.Join(t.TempDir(), "gone.md"), RelativePath: "gone.md"}}

	_, err := NewProcessor(testSite()).Process(context.Background(), files)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
}

func TestProcess_CanceledContext(t *testing.T) {
	files := writeTree(t, map[string]string{"a.md": "# A\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProcessor(testSite()).Process(ctx, files)
	require.ErrorIs(t, err, context.Canceled)
}

func TestApply_WrapsTransformErrors(t *testing.T) {
	p := NewProcessor(testSite())
	p.transforms = append(p.transforms, namedTransform{"explode", func(*Document) error {
		return fmt.Errorf("boom")
	}})

	doc := &Document{Page: seo.Page{RelativePath: "a.md"}, Content: []byte("# A\n")}
	err := p.Apply(doc)
	require.Error(t, err)

	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, errors.CategoryBuild, ce.Category())
	v, _ := ce.Context().GetString("stage")
	assert.Equal(t, "explode", v)
}

package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"paper index", "/research", "papers/sdd-frameworks/index.md", "/research/papers/sdd-frameworks"},
		{"paper page", "/research", "papers/sdd-frameworks/getting-started.md", "/research/papers/sdd-frameworks/getting-started"},
		{"top level index", "/research", "index.md", "/research/"},
		{"top level index trailing base slash", "/research/", "index.md", "/research/"},
		{"empty path", "/research", "", "/research/"},
		{"empty base", "", "papers/index.md", "/papers"},
		{"root base", "/", "index.md", "/"},
		{"no extension", "/research", "papers/notes", "/research/papers/notes"},
		{"bare index segment", "/research", "papers/index", "/research/papers"},
		{"index with other extension", "/research", "index.txt", "/research/"},
		{"html extension", "/research", "about.html", "/research/about"},
		{"uppercase extension", "/research", "About.MD", "/research/About"},
		{"unknown extension kept", "/research", "files/archive.tar.gz", "/research/files/archive.tar.gz"},
		{"duplicate slashes", "//research//", "papers//x.md", "/research/papers/x"},
		{"backslashes", "/research", `papers\x.md`, "/research/papers/x"},
		{"dot segments", "/research", "./papers/../papers/./x.md", "/research/papers/x"},
		{"dot stem", "/research", "..md", "/research/"},
		{"dot stem empty base", "", "..md", "/"},
		{"dotdot stem", "/research", "papers/...md", "/research/"},
		{"dotdot stem pops parent", "/research", "a/b/...html", "/research/a"},
		{"single dot stem", "/research", "papers/..html", "/research/papers"},
		{"nested index directories", "/research", "a/index/index.md", "/research/a"},
		{"already normalized", "/research", "/research/papers/x", "/research/papers/x"},
		{"absolute without base", "/research", "/papers/x.md", "/research/papers/x"},
		{"relative path starting with base name", "/research", "research/x.md", "/research/research/x"},
		{"multi segment base", "/a/b", "c.md", "/a/b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.base, tt.path))
		})
	}
}

func TestNormalize_UnicodeIsComposed(t *testing.T) {
	decomposed := "papers/cafe\u0301.md"
	assert.Equal(t, "/research/papers/caf\u00e9", Normalize("/research", decomposed))
}

func TestCanonicalURL(t *testing.T) {
	site := Site{HostBase: "https://davidedaniel.github.io/", PathBase: "/research/"}
	assert.Equal(t, "https://davidedaniel.github.io/research/papers/sdd-frameworks",
		CanonicalURL(site, "papers/sdd-frameworks/index.md"))
	assert.Equal(t, "https://davidedaniel.github.io/research/", CanonicalURL(site, "index.md"))
}

func TestCleanBase(t *testing.T) {
	assert.Equal(t, "", CleanBase(""))
	assert.Equal(t, "", CleanBase("/"))
	assert.Equal(t, "/research", CleanBase("research"))
	assert.Equal(t, "/research", CleanBase("/research/"))
	assert.Equal(t, "/a/b", CleanBase("//a//b//"))
}

var (
	genBase = rapid.SampledFrom([]string{"", "/", "/research", "research/", "/research/", "/a/b/", "//x//"})
	genPath = rapid.StringMatching(`(/|\\|[a-zé]{1,3}|\.|\.\.|index|\.md|\.html|\.txt|//){0,10}`)
)

func TestNormalize_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := genBase.Draw(t, "base")
		p := genPath.Draw(t, "path")

		once := Normalize(base, p)
		twice := Normalize(base, once)
		if once != twice {
			t.Fatalf("Normalize(%q, %q) = %q, but normalizing again gives %q", base, p, once, twice)
		}
	})
}

func TestNormalize_NoDoubleSeparators(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := genBase.Draw(t, "base")
		p := genPath.Draw(t, "path")

		got := Normalize(base, p)
		if strings.Contains(got, "//") {
			t.Fatalf("Normalize(%q, %q) = %q contains a double separator", base, p, got)
		}
	})
}

func TestNormalize_NeverEndsInIndexOrExtension(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := genBase.Draw(t, "base")
		p := genPath.Draw(t, "path")

		got := Normalize(base, p)
		rest := strings.TrimPrefix(got, CleanBase(base))
		last := rest[strings.LastIndex(rest, "/")+1:]
		if IsIndexSegment(last) {
			t.Fatalf("Normalize(%q, %q) = %q ends in an index segment", base, p, got)
		}
		if stripContentExtension(last) != last {
			t.Fatalf("Normalize(%q, %q) = %q ends in a content extension", base, p, got)
		}
	})
}

func TestNormalize_RootCollapse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := genBase.Draw(t, "base")
		ext := rapid.StringMatching(`[a-zA-Z0-9]{0,6}`).Draw(t, "ext")

		got := Normalize(base, "index."+ext)
		if want := CleanBase(base) + "/"; got != want {
			t.Fatalf("Normalize(%q, %q) = %q, want %q", base, "index."+ext, got, want)
		}
	})
}

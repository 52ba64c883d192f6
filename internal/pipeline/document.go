// Package pipeline runs every discovered page through the metadata transforms.
package pipeline

import (
	"time"

	"github.com/DavideDaniel/research/internal/docs"
	"github.com/DavideDaniel/research/internal/seo"
)

// Document is one page moving through the pipeline. Transforms mutate only
// the document they are handed.
type Document struct {
	Page seo.Page

	// Source facts, read-only for transforms.
	FilePath string
	Section  string
	Content  []byte

	// Filled in by transforms.
	Body           []byte
	HadFrontMatter bool
	Summary        string
	Kind           seo.ContentKind
	URLPath        string    // root-relative, e.g. /research/papers/x
	Canonical      string    // absolute canonical URL
	Fingerprint    string    // mdfp fingerprint of frontmatter and body
	Date           time.Time // frontmatter date, zero when absent
	Injected       []seo.Tag // tags appended by the metadata injector

	// LastMod is set after processing from git history or the state store.
	LastMod time.Time
}

// NewDocument builds a document from a discovered file with loaded content.
func NewDocument(file docs.DocFile) *Document {
	return &Document{
		Page:     seo.Page{RelativePath: file.RelativePath},
		FilePath: file.Path,
		Section:  file.Section,
		Content:  file.Content,
	}
}

// RelativePath is the slash separated path under the content dir.
func (d *Document) RelativePath() string {
	return d.Page.RelativePath
}

// FileTransform mutates a document in place.
type FileTransform func(doc *Document) error

// namedTransform pairs a transform with the stage name used in logs and errors.
type namedTransform struct {
	name string
	fn   FileTransform
}

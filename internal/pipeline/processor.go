package pipeline

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/DavideDaniel/research/internal/docs"
	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/logfields"
	"github.com/DavideDaniel/research/internal/seo"
)

// Processor applies the fixed transform chain to every page.
type Processor struct {
	site       seo.Site
	workers    int
	transforms []namedTransform
}

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers bounds the number of pages processed concurrently.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// NewProcessor builds a processor for site.
func NewProcessor(site seo.Site, opts ...Option) *Processor {
	p := &Processor{site: site, workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(p)
	}
	p.transforms = []namedTransform{
		{"parse_frontmatter", parseFrontMatter},
		{"resolve_title", resolveTitle},
		{"classify", classify(site.Classifier())},
		{"canonicalize", canonicalize(site)},
		{"fingerprint", fingerprint},
		{"inject_head", injectHead(site)},
	}
	return p
}

// Process loads and transforms files. The result has the same order as files.
// The first failing page cancels the remaining work.
func (p *Processor) Process(ctx context.Context, files []docs.DocFile) ([]*Document, error) {
	out := make([]*Document, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range files {
		file := files[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := file.LoadContent(); err != nil {
				return errors.WrapError(err, errors.CategoryFileSystem, "failed to read page").
					WithContext("page", file.RelativePath).Build()
			}
			doc := NewDocument(file)
			if err := p.Apply(doc); err != nil {
				return err
			}
			out[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("Processed pages", logfields.Count(len(out)))
	return out, nil
}

// Apply runs the transform chain on a single document.
func (p *Processor) Apply(doc *Document) error {
	for _, t := range p.transforms {
		if err := t.fn(doc); err != nil {
			return errors.WrapError(err, errors.CategoryBuild, "page transform failed").
				WithContext("page", doc.RelativePath()).
				WithContext("stage", t.name).Build()
		}
	}
	return nil
}

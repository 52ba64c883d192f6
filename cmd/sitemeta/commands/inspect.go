package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/DavideDaniel/research/internal/build"
	"github.com/DavideDaniel/research/internal/config"
	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/render"
	"github.com/DavideDaniel/research/internal/state"
)

// InspectCmd implements the 'inspect' command.
type InspectCmd struct {
	Page string `arg:"" optional:"" help:"Content path relative to the content dir, e.g. papers/sdd-frameworks/index.md"`
}

func (i *InspectCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	if i.Page == "" {
		return i.lastBuild(ctx, g, cfg)
	}
	return i.page(ctx, g, cfg)
}

func (i *InspectCmd) lastBuild(ctx context.Context, g *Global, cfg *config.Config) error {
	if cfg.State.Path == "" {
		return errors.ConfigError("inspect needs state.path to read build history").Build()
	}
	store, err := state.NewSQLiteStore(cfg.State.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	rec, ok, err := store.LastBuild(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NotFoundError("no build recorded yet").WithContext("state", cfg.State.Path).Build()
	}
	enc := json.NewEncoder(g.out())
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func (i *InspectCmd) page(ctx context.Context, g *Global, cfg *config.Config) error {
	report, err := build.NewService().Run(ctx, cfg, build.Options{DryRun: true})
	if err != nil {
		return err
	}

	want := path.Clean(i.Page)
	for _, d := range report.Documents {
		if d.RelativePath() != want {
			continue
		}
		html, err := render.RenderTags(d.Injected)
		if err != nil {
			return err
		}
		out := g.out()
		_, _ = fmt.Fprintf(out, "page:      %s\nkind:      %s\ncanonical: %s\n\n%s\n", d.RelativePath(), d.Kind, d.Canonical, html)
		return nil
	}
	return errors.NotFoundError("page not found in content dir").
		WithContext("page", i.Page).
		WithContext("content_dir", cfg.Content.Dir).Build()
}

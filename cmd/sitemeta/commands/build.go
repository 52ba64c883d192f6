package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/DavideDaniel/research/internal/build"
	"github.com/DavideDaniel/research/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory (default: output.dir from the config)" type:"path"`
	DryRun bool   `name:"dry-run" help:"Process every page but write nothing"`
	JSON   bool   `name:"json" help:"Print the build report as JSON"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}

	svc, err := build.NewFromConfig(cfg, metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	ctx, cancel := signalContext()
	defer cancel()

	report, err := svc.Run(ctx, cfg, build.Options{OutputDir: b.Output, DryRun: b.DryRun})
	if err != nil {
		return err
	}

	out := g.out()
	if b.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, _ = fmt.Fprintf(out, "Build %s: %d pages, %d routes, %d tags in %s\n",
		report.BuildID, report.Pages, len(report.Routes), report.Tags, report.Duration.Round(time.Millisecond))
	for _, a := range report.Artifacts {
		_, _ = fmt.Fprintf(out, "  wrote %s\n", a)
	}
	return nil
}

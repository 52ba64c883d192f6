package commands

import (
	"log/slog"

	"github.com/DavideDaniel/research/internal/build"
	"github.com/DavideDaniel/research/internal/daemon"
	"github.com/DavideDaniel/research/internal/logfields"
	"github.com/DavideDaniel/research/internal/metrics"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Addr string `help:"HTTP listen address (default: watch.addr from the config)"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	if w.Addr != "" {
		cfg.Watch.Addr = w.Addr
	}

	reg := metrics.NewRegistry()
	svc, err := build.NewFromConfig(cfg, metrics.NewPrometheusRecorder(reg))
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	ctx, cancel := signalContext()
	defer cancel()

	slog.Info("Starting watch mode", logfields.Addr(cfg.Watch.Addr), logfields.Path(cfg.Content.Dir))
	return daemon.New(cfg, svc, daemon.WithRegistry(reg)).Run(ctx)
}

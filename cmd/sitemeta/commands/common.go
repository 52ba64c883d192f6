package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/DavideDaniel/research/internal/config"
)

// Global carries the output streams shared by all commands.
type Global struct {
	Out io.Writer
	Err io.Writer
}

// CLI is the command tree and its global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitemeta.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable debug logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Write head manifest, sitemap and feed for the content dir"`
	Watch   WatchCmd   `cmd:"" help:"Rebuild on content changes and serve the output dir"`
	Init    InitCmd    `cmd:"" help:"Write a default configuration file"`
	Routes  RoutesCmd  `cmd:"" help:"Print the rewritten sitemap routes"`
	Inspect InspectCmd `cmd:"" help:"Show the last recorded build, or the head tags of one page"`
}

// AfterApply installs a stderr text logger before any command runs. Commands
// that load the configuration replace it with the configured one.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig reads root.Config and applies its logging section. --verbose
// always wins over the configured level.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(newLogger(g.errWriter(), cfg.Logging, c.Verbose))
	return cfg, nil
}

func newLogger(w io.Writer, lc config.LoggingConfig, verbose bool) *slog.Logger {
	level := config.NormalizeLogLevel(lc.Level).SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if config.NormalizeLogFormat(lc.Format) == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Global) errWriter() io.Writer {
	if g == nil || g.Err == nil {
		return os.Stderr
	}
	return g.Err
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

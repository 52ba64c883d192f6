package daemon

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DavideDaniel/research/internal/build"
	"github.com/DavideDaniel/research/internal/config"
	"github.com/DavideDaniel/research/internal/logfields"
)

// Rebuild triggers, logged with every watch-mode build.
const (
	TriggerInitial  = "initial"
	TriggerWatch    = "watch"
	TriggerSchedule = "schedule"
)

const shutdownTimeout = 5 * time.Second

// Builder runs one build. *build.Service implements it.
type Builder interface {
	Run(ctx context.Context, cfg *config.Config, opts build.Options) (*build.Report, error)
}

// Daemon is the long-running watch mode.
type Daemon struct {
	cfg      *config.Config
	builder  Builder
	registry *prometheus.Registry
	status   *buildStatus

	mu    sync.Mutex
	addr  string
	ready chan struct{}
}

// Option configures a Daemon.
type Option func(*Daemon)

// WithRegistry mounts /metrics for reg.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(d *Daemon) { d.registry = reg }
}

func New(cfg *config.Config, builder Builder, opts ...Option) *Daemon {
	d := &Daemon{
		cfg:     cfg,
		builder: builder,
		status:  &buildStatus{},
		ready:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Ready is closed once the initial build has finished and the HTTP server is
// accepting connections.
func (d *Daemon) Ready() <-chan struct{} { return d.ready }

// Addr is the bound HTTP address, empty before Ready.
func (d *Daemon) Addr() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addr
}

// Run builds once, then rebuilds on content changes and on the refresh
// interval until ctx is canceled. A failing build does not stop the daemon.
func (d *Daemon) Run(ctx context.Context) error {
	server, err := NewHTTPServer(d.cfg.Watch.Addr, d.cfg.Output.Dir, d.status, d.registry)
	if err != nil {
		return err
	}

	watcher, err := newContentWatcher(d.cfg.Content.Dir)
	if err != nil {
		_ = server.listener.Close()
		return err
	}
	defer func() { _ = watcher.Close() }()

	scheduler, err := NewScheduler()
	if err != nil {
		_ = server.listener.Close()
		return err
	}

	d.rebuild(ctx, TriggerInitial)

	server.Start()
	d.mu.Lock()
	d.addr = server.Addr()
	d.mu.Unlock()

	worker := newRebuildWorker(d.rebuild)
	if _, err := scheduler.SchedulePeriodicRebuild(ctx, d.cfg.RefreshInterval(), worker.Submit); err != nil {
		d.shutdown(server, scheduler, worker)
		return err
	}
	scheduler.Start()

	deb := newDebouncer(d.cfg.DebounceDuration())
	defer deb.Stop()

	slog.Info("Watching content",
		logfields.Path(d.cfg.Content.Dir),
		slog.Duration("debounce", d.cfg.DebounceDuration()),
		slog.Duration("refresh", d.cfg.RefreshInterval()))
	close(d.ready)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutting down watch mode")
			d.shutdown(server, scheduler, worker)
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				d.shutdown(server, scheduler, worker)
				return nil
			}
			if handleFileEvent(watcher, ev) {
				deb.Trigger(TriggerWatch)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				d.shutdown(server, scheduler, worker)
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case trigger := <-deb.Requests():
			worker.Submit(ctx, trigger)
		}
	}
}

func (d *Daemon) rebuild(ctx context.Context, trigger string) {
	opts := build.Options{SkipIfUnchanged: trigger != TriggerInitial}
	report, err := d.builder.Run(ctx, d.cfg, opts)
	if err != nil && ctx.Err() != nil && stderrors.Is(err, ctx.Err()) {
		return
	}
	d.status.record(report, err)

	if err != nil {
		slog.Warn("Rebuild failed", logfields.Trigger(trigger), logfields.Error(err))
		return
	}
	slog.Info("Rebuild finished",
		logfields.Trigger(trigger),
		logfields.BuildID(report.BuildID),
		slog.String("status", string(report.Status)))
}

func (d *Daemon) shutdown(server *HTTPServer, scheduler *Scheduler, worker *rebuildWorker) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := scheduler.Stop(); err != nil {
		slog.Warn("Scheduler shutdown error", logfields.Error(err))
	}
	if err := server.Stop(ctx); err != nil {
		slog.Warn("HTTP server shutdown error", logfields.Error(err))
	}
	worker.Wait()
}

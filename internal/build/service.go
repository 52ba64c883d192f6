package build

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DavideDaniel/research/internal/config"
	"github.com/DavideDaniel/research/internal/docs"
	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/git"
	"github.com/DavideDaniel/research/internal/logfields"
	"github.com/DavideDaniel/research/internal/metrics"
	"github.com/DavideDaniel/research/internal/notify"
	"github.com/DavideDaniel/research/internal/pipeline"
	"github.com/DavideDaniel/research/internal/state"
)

// Stage names used in logs, metrics and Report.StageTimes.
const (
	StageDiscover = "discover"
	StageProcess  = "process"
	StageLastMod  = "lastmod"
	StageRoutes   = "routes"
	StageWrite    = "write"
	StageNotify   = "notify"
)

// Options modify a single run.
type Options struct {
	OutputDir       string // overrides output.dir
	DryRun          bool   // process everything, write nothing
	SkipIfUnchanged bool   // skip writing when content and build day match the previous run
}

// lastModSource answers page modification dates; *git.History implements it.
type lastModSource interface {
	LastModified(relativePath string) (time.Time, bool, error)
}

// Service runs builds. It is safe to call Run from several goroutines, but
// runs are serialized.
type Service struct {
	recorder    metrics.Recorder
	notifier    notify.Notifier
	store       state.Store
	openHistory func(contentDir string) (lastModSource, error)
	now         func() time.Time
	newID       func() string

	mu       sync.Mutex
	lastHash string
	lastDay  string
}

// Option configures a Service.
type Option func(*Service)

func WithRecorder(r metrics.Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithStore enables the fingerprint store and build history.
func WithStore(st state.Store) Option {
	return func(s *Service) { s.store = st }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService returns a service with no-op metrics and notifications.
func NewService(opts ...Option) *Service {
	s := &Service{
		recorder: metrics.NoopRecorder{},
		notifier: notify.NoopNotifier{},
		openHistory: func(dir string) (lastModSource, error) {
			return git.Open(dir)
		},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one build for cfg.
func (s *Service) Run(ctx context.Context, cfg *config.Config, opts Options) (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	report := newReport(s.newID(), start)
	log := slog.With(logfields.BuildID(report.BuildID))
	log.Info("Build started", logfields.Path(cfg.Content.Dir))

	err := s.run(ctx, log, cfg, opts, report)
	end := s.now()

	switch {
	case err == nil && report.Status == StatusSkipped:
		report.finish(StatusSkipped, end)
		log.Info("Build skipped", slog.String("reason", report.SkipReason), logfields.Duration(report.Duration))
		return report, nil
	case err == nil:
		report.finish(StatusSuccess, end)
		s.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
		s.recorder.ObserveBuildDuration(report.Duration)
		s.recorder.SetLastBuild(end)
		if !opts.DryRun {
			s.recordHistory(ctx, log, report, "")
		}
		log.Info("Build completed",
			logfields.Count(report.Pages),
			logfields.Routes(len(report.Routes)),
			logfields.Tags(report.Tags),
			logfields.Duration(report.Duration))
		s.publish(ctx, log, cfg, report)
		return report, nil
	case stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded):
		report.finish(StatusCanceled, end)
		s.recorder.IncBuildOutcome(metrics.OutcomeCanceled)
		log.Warn("Build canceled", logfields.Duration(report.Duration))
		return report, err
	default:
		report.finish(StatusFailed, end)
		s.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		if !opts.DryRun {
			s.recordHistory(context.WithoutCancel(ctx), log, report, err.Error())
		}
		log.Error("Build failed", logfields.Error(err), logfields.Duration(report.Duration))
		return report, err
	}
}

func (s *Service) run(ctx context.Context, log *slog.Logger, cfg *config.Config, opts Options, report *Report) error {
	site := cfg.SEOSite(report.StartTime)

	var files []docs.DocFile
	if err := s.stage(ctx, report, StageDiscover, func() error {
		var err error
		files, err = docs.Discover(cfg.Content.Dir, cfg.Content.Extensions)
		if err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "content discovery failed").
				WithContext("path", cfg.Content.Dir).Build()
		}
		return nil
	}); err != nil {
		return err
	}

	processor := pipeline.NewProcessor(site, pipeline.WithWorkers(cfg.Content.Workers))
	if err := s.stage(ctx, report, StageProcess, func() error {
		var err error
		report.Documents, err = processor.Process(ctx, files)
		return err
	}); err != nil {
		return err
	}
	s.summarize(report)

	day := site.BuildDay()
	if opts.SkipIfUnchanged && report.ContentHash == s.lastHash && day == s.lastDay {
		report.Status = StatusSkipped
		report.SkipReason = "content unchanged"
		return nil
	}

	if err := s.stage(ctx, report, StageLastMod, func() error {
		return s.assignLastMod(ctx, log, cfg, report, opts.DryRun)
	}); err != nil {
		return err
	}

	if err := s.stage(ctx, report, StageRoutes, func() error {
		report.Routes = routesFor(site, report.Documents)
		return nil
	}); err != nil {
		return err
	}
	s.recorder.SetRoutes(len(report.Routes))

	if opts.DryRun {
		log.Info("Dry run, no artifacts or state written")
		return nil
	}
	if err := s.stage(ctx, report, StageWrite, func() error {
		return s.writeArtifacts(cfg, site, opts, report)
	}); err != nil {
		return err
	}

	s.lastHash, s.lastDay = report.ContentHash, day
	return nil
}

// stage times fn and stops early when ctx is done.
func (s *Service) stage(ctx context.Context, report *Report, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	started := time.Now()
	err := fn()
	d := time.Since(started)
	report.StageTimes[name] = d
	s.recorder.ObserveStageDuration(name, d)
	slog.Debug("Stage finished", logfields.BuildID(report.BuildID), logfields.Stage(name), logfields.Duration(d))
	return err
}

func (s *Service) summarize(report *Report) {
	loaded := make([]docs.DocFile, 0, len(report.Documents))
	for _, d := range report.Documents {
		report.PagesByKind[d.Kind.String()]++
		report.Tags += len(d.Injected)
		loaded = append(loaded, docs.DocFile{RelativePath: d.RelativePath(), Content: d.Content})
	}
	report.Pages = len(report.Documents)
	report.ContentHash = docs.ComputeDocsHash(loaded)

	for kind, n := range report.PagesByKind {
		s.recorder.AddPages(kind, n)
	}
	s.recorder.AddTags(report.Tags)
}

func (s *Service) recordHistory(ctx context.Context, log *slog.Logger, report *Report, errText string) {
	if s.store == nil {
		return
	}
	status := state.BuildSucceeded
	if errText != "" {
		status = state.BuildFailed
	}
	rec := state.BuildRecord{
		ID:          report.BuildID,
		StartedAt:   report.StartTime,
		FinishedAt:  report.EndTime,
		Status:      status,
		Pages:       report.Pages,
		Routes:      len(report.Routes),
		ContentHash: report.ContentHash,
		Error:       errText,
	}
	if err := s.store.RecordBuild(ctx, rec); err != nil {
		log.Warn("Failed to record build history", logfields.Error(err))
	}
}

// publish failures are logged; a build that wrote its artifacts has succeeded.
func (s *Service) publish(ctx context.Context, log *slog.Logger, cfg *config.Config, report *Report) {
	_ = s.stage(context.WithoutCancel(ctx), report, StageNotify, func() error {
		ev := notify.BuildCompleted{
			BuildID:     report.BuildID,
			Site:        cfg.Site.Title,
			Pages:       report.Pages,
			Articles:    report.PagesByKind["article"],
			Routes:      len(report.Routes),
			ContentHash: report.ContentHash,
			DurationMS:  report.Duration.Milliseconds(),
			FinishedAt:  report.EndTime,
		}
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.notifier.Publish(pubCtx, ev); err != nil {
			log.Warn("Build notification failed", logfields.Error(err))
		}
		return nil
	})
}

package build

import (
	"context"
	"log/slog"
	"time"

	"github.com/DavideDaniel/research/internal/config"
	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/logfields"
)

// assignLastMod dates every document: git history first, then the
// fingerprint store. Documents neither source knows keep a zero LastMod.
// With dryRun set the store is only read.
func (s *Service) assignLastMod(ctx context.Context, log *slog.Logger, cfg *config.Config, report *Report, dryRun bool) error {
	var history lastModSource
	if cfg.Git.Enabled {
		h, err := s.openHistory(cfg.Content.Dir)
		if err != nil {
			log.Warn("Git history unavailable, falling back to fingerprints", logfields.Error(err))
		} else {
			history = h
		}
	}

	now := s.now()
	for _, doc := range report.Documents {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.store != nil {
			changed, err := s.changedAt(ctx, doc.RelativePath(), doc.Fingerprint, now, dryRun)
			if err != nil {
				return err
			}
			doc.LastMod = changed
		}

		if history == nil {
			continue
		}
		when, ok, err := history.LastModified(doc.RelativePath())
		if err != nil {
			if ce, isClassified := errors.AsClassified(err); isClassified && !ce.IsFatal() {
				log.Warn("Git lookup failed", logfields.Page(doc.RelativePath()), logfields.Error(err))
				continue
			}
			return err
		}
		if ok {
			doc.LastMod = when
		}
	}
	return nil
}

// changedAt returns the time the page's fingerprint last changed. Unless
// dryRun is set, the fingerprint is recorded.
func (s *Service) changedAt(ctx context.Context, rel, fingerprint string, now time.Time, dryRun bool) (time.Time, error) {
	if !dryRun {
		return s.store.Observe(ctx, rel, fingerprint, now)
	}
	rec, ok, err := s.store.Page(ctx, rel)
	if err != nil {
		return time.Time{}, err
	}
	if !ok || rec.Fingerprint != fingerprint {
		return now, nil
	}
	return rec.ChangedAt, nil
}

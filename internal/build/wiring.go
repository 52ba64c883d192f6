package build

import (
	stderrors "errors"

	"github.com/DavideDaniel/research/internal/config"
	"github.com/DavideDaniel/research/internal/metrics"
	"github.com/DavideDaniel/research/internal/notify"
	"github.com/DavideDaniel/research/internal/state"
)

// NewFromConfig opens the state store and notifier cfg asks for and returns
// a service that owns them. Call Close when done.
func NewFromConfig(cfg *config.Config, recorder metrics.Recorder) (*Service, error) {
	opts := []Option{WithRecorder(recorder)}

	var store state.Store
	if cfg.State.Path != "" {
		st, err := state.NewSQLiteStore(cfg.State.Path)
		if err != nil {
			return nil, err
		}
		store = st
		opts = append(opts, WithStore(st))
	}

	notifier, err := notify.New(cfg.Notify.URL, cfg.Notify.Subject)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, err
	}
	opts = append(opts, WithNotifier(notifier))

	return NewService(opts...), nil
}

// Store returns the fingerprint store, or nil when none is configured.
func (s *Service) Store() state.Store {
	return s.store
}

// Close releases the store and notifier.
func (s *Service) Close() error {
	var errs []error
	if s.store != nil {
		errs = append(errs, s.store.Close())
	}
	if s.notifier != nil {
		errs = append(errs, s.notifier.Close())
	}
	return stderrors.Join(errs...)
}

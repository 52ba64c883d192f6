package state

import (
	"context"
	"time"
)

// PageRecord is the stored fingerprint state of one page.
type PageRecord struct {
	Path        string
	Fingerprint string
	ChangedAt   time.Time
	SeenAt      time.Time
}

// BuildStatus is the outcome of a build.
type BuildStatus string

const (
	BuildSucceeded BuildStatus = "succeeded"
	BuildFailed    BuildStatus = "failed"
)

// BuildRecord is one row of build history.
type BuildRecord struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  time.Time
	Status      BuildStatus
	Pages       int
	Routes      int
	ContentHash string
	Error       string
}

// Store is the persistence surface the build uses.
type Store interface {
	// Observe records fingerprint for path and returns the time its content last changed.
	Observe(ctx context.Context, path, fingerprint string, now time.Time) (time.Time, error)
	Page(ctx context.Context, path string) (PageRecord, bool, error)
	RecordBuild(ctx context.Context, b BuildRecord) error
	LastBuild(ctx context.Context) (BuildRecord, bool, error)
	Close() error
}

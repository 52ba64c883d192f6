package state

import (
	"context"
	"database/sql"
	stderrors "errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/DavideDaniel/research/internal/foundation/errors"
)

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the database at dbPath.
// Use ":memory:" for an in-memory store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, storeErr(err, "create state directory").WithContext("path", dbPath).Build()
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, storeErr(err, "open sqlite database").WithContext("path", dbPath).Build()
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, storeErr(err, "initialize schema").WithContext("path", dbPath).Build()
	}
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pages (
		path TEXT PRIMARY KEY,
		fingerprint TEXT NOT NULL,
		changed_at INTEGER NOT NULL,
		seen_at INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS builds (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		finished_at INTEGER NOT NULL,
		status TEXT NOT NULL,
		pages INTEGER NOT NULL,
		routes INTEGER NOT NULL,
		content_hash TEXT NOT NULL,
		error TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_builds_finished ON builds(finished_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Observe implements Store.
func (s *SQLiteStore) Observe(ctx context.Context, path, fingerprint string, now time.Time) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return time.Time{}, storeErr(err, "begin transaction").Build()
	}
	defer func() { _ = tx.Rollback() }()

	var oldFP string
	var changedUnix int64
	err = tx.QueryRowContext(ctx, "SELECT fingerprint, changed_at FROM pages WHERE path = ?", path).Scan(&oldFP, &changedUnix)
	switch {
	case stderrors.Is(err, sql.ErrNoRows):
		changedUnix = now.Unix()
		_, err = tx.ExecContext(ctx,
			"INSERT INTO pages (path, fingerprint, changed_at, seen_at) VALUES (?, ?, ?, ?)",
			path, fingerprint, changedUnix, now.Unix())
	case err != nil:
		return time.Time{}, storeErr(err, "query page").WithContext("page", path).Build()
	default:
		if oldFP != fingerprint {
			changedUnix = now.Unix()
		}
		_, err = tx.ExecContext(ctx,
			"UPDATE pages SET fingerprint = ?, changed_at = ?, seen_at = ? WHERE path = ?",
			fingerprint, changedUnix, now.Unix(), path)
	}
	if err != nil {
		return time.Time{}, storeErr(err, "write page").WithContext("page", path).Build()
	}
	if err := tx.Commit(); err != nil {
		return time.Time{}, storeErr(err, "commit").Build()
	}
	return time.Unix(changedUnix, 0).UTC(), nil
}

// Page implements Store.
func (s *SQLiteStore) Page(ctx context.Context, path string) (PageRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rec PageRecord
	var changed, seen int64
	err := s.db.QueryRowContext(ctx,
		"SELECT path, fingerprint, changed_at, seen_at FROM pages WHERE path = ?", path).
		Scan(&rec.Path, &rec.Fingerprint, &changed, &seen)
	if stderrors.Is(err, sql.ErrNoRows) {
		return PageRecord{}, false, nil
	}
	if err != nil {
		return PageRecord{}, false, storeErr(err, "query page").WithContext("page", path).Build()
	}
	rec.ChangedAt = time.Unix(changed, 0).UTC()
	rec.SeenAt = time.Unix(seen, 0).UTC()
	return rec, true, nil
}

// RecordBuild implements Store.
func (s *SQLiteStore) RecordBuild(ctx context.Context, b BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO builds (id, started_at, finished_at, status, pages, routes, content_hash, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.StartedAt.Unix(), b.FinishedAt.Unix(), string(b.Status), b.Pages, b.Routes, b.ContentHash, b.Error)
	if err != nil {
		return storeErr(err, "insert build").WithContext("build_id", b.ID).Build()
	}
	return nil
}

// LastBuild implements Store.
func (s *SQLiteStore) LastBuild(ctx context.Context) (BuildRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b BuildRecord
	var started, finished int64
	var status string
	var errText sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, finished_at, status, pages, routes, content_hash, error
		 FROM builds ORDER BY finished_at DESC, rowid DESC LIMIT 1`).
		Scan(&b.ID, &started, &finished, &status, &b.Pages, &b.Routes, &b.ContentHash, &errText)
	if stderrors.Is(err, sql.ErrNoRows) {
		return BuildRecord{}, false, nil
	}
	if err != nil {
		return BuildRecord{}, false, storeErr(err, "query last build").Build()
	}
	b.StartedAt = time.Unix(started, 0).UTC()
	b.FinishedAt = time.Unix(finished, 0).UTC()
	b.Status = BuildStatus(status)
	b.Error = errText.String
	return b, true, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func storeErr(err error, msg string) *errors.ErrorBuilder {
	return errors.WrapError(err, errors.CategoryStore, msg)
}

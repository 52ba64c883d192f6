package git

import (
	stderrors "errors"
	"io"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/DavideDaniel/research/internal/foundation/errors"
)

// History answers "when did this page last change" from commit history.
// It is safe for concurrent use.
type History struct {
	repo   *git.Repository
	head   plumbing.Hash
	prefix string // content dir relative to the worktree root, slash separated

	mu    sync.Mutex
	cache map[string]time.Time
}

// Open finds the repository containing contentDir, searching parent directories.
func Open(contentDir string) (*History, error) {
	abs, err := filepath.Abs(contentDir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve content dir").
			WithContext("path", contentDir).Build()
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, classify(err, "open", abs)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, classify(err, "worktree", abs)
	}
	ref, err := repo.Head()
	if err != nil {
		return nil, classify(err, "head", abs)
	}

	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil {
		return nil, classify(err, "relative path", abs)
	}
	prefix := filepath.ToSlash(rel)
	if prefix == "." {
		prefix = ""
	}

	return &History{
		repo:   repo,
		head:   ref.Hash(),
		prefix: prefix,
		cache:  make(map[string]time.Time),
	}, nil
}

// LastModified returns the committer time of the newest commit touching the
// page at relativePath (relative to the content dir). ok is false for files
// that were never committed.
func (h *History) LastModified(relativePath string) (t time.Time, ok bool, err error) {
	repoPath := path.Join(h.prefix, filepath.ToSlash(relativePath))

	h.mu.Lock()
	defer h.mu.Unlock()

	if cached, hit := h.cache[repoPath]; hit {
		return cached, !cached.IsZero(), nil
	}

	iter, err := h.repo.Log(&git.LogOptions{From: h.head, FileName: &repoPath})
	if err != nil {
		return time.Time{}, false, classify(err, "log", repoPath)
	}
	defer iter.Close()

	c, err := iter.Next()
	switch {
	case stderrors.Is(err, io.EOF):
		h.cache[repoPath] = time.Time{}
		return time.Time{}, false, nil
	case err != nil:
		return time.Time{}, false, classify(err, "log", repoPath)
	}

	when := commitTime(c)
	h.cache[repoPath] = when
	return when, true, nil
}

// Head returns the commit the history was opened at.
func (h *History) Head() string {
	return h.head.String()
}

func commitTime(c *object.Commit) time.Time {
	if !c.Committer.When.IsZero() {
		return c.Committer.When.UTC()
	}
	return c.Author.When.UTC()
}

// classify turns go-git failures into git-category errors. A missing
// repository maps to not_found so callers can fall back quietly.
func classify(err error, op, target string) error {
	b := errors.GitError("git history unavailable").WithCause(err).
		WithContext("op", op).WithContext("path", target)
	if stderrors.Is(err, git.ErrRepositoryNotExists) || stderrors.Is(err, plumbing.ErrReferenceNotFound) {
		b = errors.NewError(errors.CategoryNotFound, "git history unavailable").WithCause(err).
			WithContext("op", op).WithContext("path", target).Warning()
	}
	return b.Build()
}

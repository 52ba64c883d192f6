package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	derrors "github.com/DavideDaniel/research/internal/docs/errors"
	"github.com/DavideDaniel/research/internal/logfields"
)

// DocFile is one discovered content source.
type DocFile struct {
	Path         string // absolute or dir-joined path on disk
	RelativePath string // slash separated, relative to the content dir
	Section      string // first path segment, "" at the top level
	Name         string // file name without extension
	Extension    string
	Content      []byte // loaded on demand
}

// skippedDirs are never descended into.
var skippedDirs = map[string]struct{}{
	"public":       {},
	"node_modules": {},
}

// Discover walks dir and returns the files whose extension is listed in
// extensions, sorted by relative path. Dot directories such as .vitepress are skipped.
func Discover(dir string, extensions []string) ([]DocFile, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", derrors.ErrContentDirNotFound, dir)
	}

	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = struct{}{}
	}

	var files []DocFile
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path == dir {
				return nil
			}
			if _, skip := skippedDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		ext := filepath.Ext(name)
		if _, ok := exts[strings.ToLower(ext)]; !ok {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		section := ""
		if i := strings.IndexByte(rel, '/'); i >= 0 {
			section = rel[:i]
		}
		files = append(files, DocFile{
			Path:         path,
			RelativePath: rel,
			Section:      section,
			Name:         strings.TrimSuffix(name, ext),
			Extension:    ext,
		})
		slog.Debug("Discovered file", logfields.File(rel), slog.String("section", section))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", derrors.ErrWalkFailed, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", derrors.ErrNoDocsFound, dir)
	}

	slices.SortFunc(files, func(a, b DocFile) int { return strings.Compare(a.RelativePath, b.RelativePath) })
	return files, nil
}

// LoadContent reads the file once; later calls are no-ops.
func (df *DocFile) LoadContent() error {
	if df.Content != nil {
		return nil
	}
	content, err := os.ReadFile(df.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, df.Path, err)
	}
	df.Content = content
	return nil
}

// IsIndex reports whether the file is a section index page.
func (df *DocFile) IsIndex() bool {
	return strings.EqualFold(df.Name, "index")
}

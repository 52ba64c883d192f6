package render

import (
	"os"
	"path/filepath"

	"github.com/DavideDaniel/research/internal/foundation/errors"
)

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place so readers never see a partial artifact.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", dir).Build()
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create temp file").
			WithContext("path", path).Build()
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write artifact").
			WithContext("path", path).Build()
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to close artifact").
			WithContext("path", path).Build()
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to set artifact mode").
			WithContext("path", path).Build()
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to move artifact into place").
			WithContext("path", path).Build()
	}
	return nil
}

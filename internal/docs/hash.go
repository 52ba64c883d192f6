package docs

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// ComputeDocsHash returns a deterministic hash over the relative paths and
// contents of files. Load content before calling; unloaded files hash by path only.
func ComputeDocsHash(files []DocFile) string {
	sorted := slices.Clone(files)
	slices.SortFunc(sorted, func(a, b DocFile) int { return strings.Compare(a.RelativePath, b.RelativePath) })

	h := sha256.New()
	for _, f := range sorted {
		sum := sha256.Sum256(f.Content)
		h.Write([]byte(f.RelativePath))
		h.Write([]byte{0})
		h.Write(sum[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_StableAcrossVolatileFields(t *testing.T) {
	body := []byte("# Overview\n")
	base, err := Fingerprint(map[string]any{"title": "Overview", "tags": []any{"a", "b"}}, body)
	require.NoError(t, err)
	require.NotEmpty(t, base)

	withVolatile, err := Fingerprint(map[string]any{
		"title":       "Overview",
		"tags":        []any{"a", "b"},
		"lastmod":     "2026-01-01",
		"fingerprint": "stale",
	}, body)
	require.NoError(t, err)
	assert.Equal(t, base, withVolatile)
}

func TestFingerprint_ChangesWithContent(t *testing.T) {
	fields := map[string]any{"title": "Overview"}
	a, err := Fingerprint(fields, []byte("one"))
	require.NoError(t, err)
	b, err := Fingerprint(fields, []byte("two"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	c, err := Fingerprint(map[string]any{"title": "Other"}, []byte("one"))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestFingerprint_NestedMapOrderIrrelevant(t *testing.T) {
	a, err := Fingerprint(map[string]any{"meta": map[string]any{"x": 1, "y": 2}}, nil)
	require.NoError(t, err)
	b, err := Fingerprint(map[string]any{"meta": map[string]any{"y": 2, "x": 1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFingerprint_NilFields(t *testing.T) {
	fp, err := Fingerprint(nil, []byte("body"))
	require.NoError(t, err)
	assert.NotEmpty(t, fp)
}

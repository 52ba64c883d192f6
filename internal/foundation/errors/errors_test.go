package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := FileSystemError("read page").
		WithCause(cause).
		WithContext("path", "docs/index.md").
		Build()

	assert.Equal(t, CategoryFileSystem, err.Category())
	assert.Equal(t, SeverityError, err.Severity())
	assert.Equal(t, "[filesystem:error] read page: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)

	path, ok := err.Context().GetString("path")
	require.True(t, ok)
	assert.Equal(t, "docs/index.md", path)
}

func TestConvenienceConstructors(t *testing.T) {
	assert.True(t, ConfigError("x").Build().IsFatal())
	assert.False(t, ConfigError("x").Build().CanRetry())
	assert.True(t, NotifyError("x").Build().CanRetry())
	assert.Equal(t, SeverityWarning, GitError("x").Build().Severity())
}

func TestAsClassified_WalksChain(t *testing.T) {
	inner := StoreError("open state db").Build()
	wrapped := fmt.Errorf("build: %w", inner)

	ce, ok := AsClassified(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, ce)
	assert.True(t, HasCategory(wrapped, CategoryStore))
	assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
}

func TestWithContext_DoesNotMutateOriginal(t *testing.T) {
	base := BuildError("write sitemap").Build()
	derived := base.WithContext("file", "sitemap.xml")

	_, ok := base.Context().Get("file")
	assert.False(t, ok)
	file, _ := derived.Context().GetString("file")
	assert.Equal(t, "sitemap.xml", file)
	assert.ErrorIs(t, derived, base)
}

func TestCLIErrorAdapter(t *testing.T) {
	var logs, out bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	a.out = &out
	var code int
	a.exit = func(c int) { code = c }

	a.HandleError(ConfigError("site.host is not a URL").WithContext("value", "nope").Build())

	assert.Equal(t, 7, code)
	assert.Equal(t, "Error: site.host is not a URL\n", out.String())
	assert.Contains(t, logs.String(), "category=config")
	assert.Contains(t, logs.String(), "value=nope")

	assert.Equal(t, 0, a.ExitCodeFor(nil))
	assert.Equal(t, 1, a.ExitCodeFor(stderrors.New("x")))
	assert.Equal(t, 11, a.ExitCodeFor(BuildError("x").Build()))
	assert.Equal(t, "Internal error occurred (use -v for details)", a.FormatError(InternalError("x").Build()))
}

func TestHTTPErrorAdapter(t *testing.T) {
	a := NewHTTPErrorAdapter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	a.WriteErrorResponse(rec, req, BuildError("last build failed").WithContext("build_id", "b1").Build())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"last build failed","code":"build","details":{"build_id":"b1"}}`, rec.Body.String())
	assert.Equal(t, http.StatusInternalServerError, a.StatusCodeFor(stderrors.New("x")))
}

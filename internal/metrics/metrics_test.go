package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveStageDuration("process", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.AddPages("article", 3)
	pr.AddPages("page", 1)
	pr.AddTags(25)
	pr.SetRoutes(4)
	pr.SetLastBuild(time.Unix(1_800_000_000, 0))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 7)

	body := scrape(t, reg)
	assert.Contains(t, body, `sitemeta_build_outcomes_total{outcome="success"} 2`)
	assert.Contains(t, body, `sitemeta_pages_processed_total{kind="article"} 3`)
	assert.Contains(t, body, "sitemeta_head_tags_emitted_total 25")
	assert.Contains(t, body, "sitemeta_sitemap_routes 4")
	assert.Contains(t, body, "sitemeta_last_build_timestamp_seconds 1.8e+09")
}

func scrape(t *testing.T, reg *prom.Registry) string {
	t.Helper()
	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome(OutcomeFailed)
	r.AddPages("root", 1)
}

func TestHTTPHandler(t *testing.T) {
	reg := NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.SetRoutes(7)

	body := scrape(t, reg)
	assert.Contains(t, body, "sitemeta_sitemap_routes 7")
	assert.Contains(t, body, "go_goroutines")
}

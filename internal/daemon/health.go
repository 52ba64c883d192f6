package daemon

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DavideDaniel/research/internal/build"
	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/version"
)

// HealthStatus is the overall state reported by /healthz.
type HealthStatus string

const (
	HealthStatusHealthy  HealthStatus = "healthy"
	HealthStatusDegraded HealthStatus = "degraded" // serving an older good build
	HealthStatusStarting HealthStatus = "starting" // no build has finished yet
)

// HealthResponse is the /healthz payload.
type HealthResponse struct {
	Status    HealthStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Uptime    string       `json:"uptime"`
	Version   string       `json:"version"`
	Builds    int          `json:"builds"`
	LastGood  *time.Time   `json:"last_good_build,omitempty"`
	LastBuild *BuildInfo   `json:"last_build,omitempty"`
	LastError string       `json:"last_error,omitempty"`
}

// BuildInfo summarizes a build report.
type BuildInfo struct {
	ID       string       `json:"id"`
	Status   build.Status `json:"status"`
	Pages    int          `json:"pages"`
	Routes   int          `json:"routes"`
	Duration string       `json:"duration"`
}

// handleHealth reports 200 while a good build is being served. Before the
// first good build, the failure is written through the error adapter.
func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.status.snapshot()

	if !snap.hasGoodBuild && snap.lastError != nil {
		s.errorAdapter.WriteErrorResponse(w, r, errors.RuntimeError("no successful build yet").
			WithCause(snap.lastError).
			WithContext("builds", snap.builds).Build())
		return
	}

	resp := HealthResponse{
		Status:    HealthStatusHealthy,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Version:   version.Version,
		Builds:    snap.builds,
	}
	switch {
	case !snap.hasGoodBuild:
		resp.Status = HealthStatusStarting
	case snap.lastError != nil:
		resp.Status = HealthStatusDegraded
		resp.LastError = snap.lastError.Error()
	}
	if snap.hasGoodBuild {
		lg := snap.lastGood
		resp.LastGood = &lg
	}
	if rep := snap.lastReport; rep != nil {
		resp.LastBuild = &BuildInfo{
			ID:       rep.BuildID,
			Status:   rep.Status,
			Pages:    rep.Pages,
			Routes:   len(rep.Routes),
			Duration: rep.Duration.String(),
		}
	}

	code := http.StatusOK
	if resp.Status == HealthStatusStarting {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

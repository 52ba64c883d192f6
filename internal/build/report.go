package build

import (
	"time"

	"github.com/DavideDaniel/research/internal/pipeline"
	"github.com/DavideDaniel/research/internal/seo"
)

// Status is the overall build outcome.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
	StatusCanceled Status = "canceled"
)

// Report describes a finished build.
type Report struct {
	BuildID     string                   `json:"build_id"`
	Status      Status                   `json:"status"`
	SkipReason  string                   `json:"skip_reason,omitempty"`
	StartTime   time.Time                `json:"start_time"`
	EndTime     time.Time                `json:"end_time"`
	Duration    time.Duration            `json:"duration"`
	Pages       int                      `json:"pages"`
	PagesByKind map[string]int           `json:"pages_by_kind"`
	Tags        int                      `json:"tags"`
	Routes      []seo.RouteEntry         `json:"routes"`
	ContentHash string                   `json:"content_hash"`
	Artifacts   []string                 `json:"artifacts"`
	StageTimes  map[string]time.Duration `json:"stage_times"`

	Documents []*pipeline.Document `json:"-"`
}

func newReport(id string, start time.Time) *Report {
	return &Report{
		BuildID:     id,
		StartTime:   start,
		PagesByKind: map[string]int{},
		StageTimes:  map[string]time.Duration{},
	}
}

func (r *Report) finish(status Status, end time.Time) {
	r.Status = status
	r.EndTime = end
	r.Duration = end.Sub(r.StartTime)
}

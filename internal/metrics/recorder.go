package metrics

import "time"

// Outcome labels the final status of a build.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// Recorder defines the build observability hooks.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome Outcome)
	AddPages(kind string, n int)
	AddTags(n int)
	SetRoutes(n int)
	SetLastBuild(t time.Time)
}

// NoopRecorder discards every observation.
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncBuildOutcome(Outcome)                    {}
func (NoopRecorder) AddPages(string, int)                       {}
func (NoopRecorder) AddTags(int)                                {}
func (NoopRecorder) SetRoutes(int)                              {}
func (NoopRecorder) SetLastBuild(time.Time)                     {}

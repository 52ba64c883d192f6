// Package metrics records build observations.
//
// Components take a Recorder; NoopRecorder is the default so callers never
// check for nil. NewPrometheusRecorder registers real collectors and
// HTTPHandler exposes them for scraping in watch mode.
package metrics

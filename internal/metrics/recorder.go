// Package metrics provides observability hooks for the batch build. The
// default recorder is a no-op; the Prometheus recorder accumulates into a
// registry that can be written out in textfile-collector format after a run.
package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultWarning  ResultLabel = "warning"
	ResultFatal    ResultLabel = "fatal"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder defines observability hooks for build and stage metrics.
// Implementations may forward to Prometheus or stay no-op when metrics are
// not configured.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncBuildOutcome(outcome string) // outcome: success|failed|canceled
	IncArticles(n int)
	IncSkipped(reason string, n int) // reason: error_page|no_structure|duplicate|unreadable
	IncCategories(n int)
	IncUnresolvedLinks(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncBuildOutcome(string)                     {}
func (NoopRecorder) IncArticles(int)                            {}
func (NoopRecorder) IncSkipped(string, int)                     {}
func (NoopRecorder) IncCategories(int)                          {}
func (NoopRecorder) IncUnresolvedLinks(int)                     {}

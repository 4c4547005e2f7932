package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry        *prom.Registry
	stageDuration   *prom.HistogramVec
	buildDuration   prom.Histogram
	stageResults    *prom.CounterVec
	buildOutcome    *prom.CounterVec
	articles        prom.Counter
	skipped         *prom.CounterVec
	categories      prom.Counter
	unresolvedLinks prom.Counter
}

// NewPrometheusRecorder constructs and registers Prometheus metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "wikibuild",
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual build stages",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "wikibuild",
		Name:      "build_duration_seconds",
		Help:      "Total build duration",
		Buckets:   prom.DefBuckets,
	})
	pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "wikibuild",
		Name:      "stage_results_total",
		Help:      "Stage result counts by outcome",
	}, []string{"stage", "result"})
	pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "wikibuild",
		Name:      "build_outcomes_total",
		Help:      "Build outcomes by final status",
	}, []string{"outcome"})
	pr.articles = prom.NewCounter(prom.CounterOpts{
		Namespace: "wikibuild",
		Name:      "articles_total",
		Help:      "Articles extracted and written",
	})
	pr.skipped = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "wikibuild",
		Name:      "documents_skipped_total",
		Help:      "Source documents skipped by reason",
	}, []string{"reason"})
	pr.categories = prom.NewCounter(prom.CounterOpts{
		Namespace: "wikibuild",
		Name:      "categories_total",
		Help:      "Category nodes in the finished graph",
	})
	pr.unresolvedLinks = prom.NewCounter(prom.CounterOpts{
		Namespace: "wikibuild",
		Name:      "unresolved_member_links_total",
		Help:      "Category member titles that resolved to no article",
	})
	reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.stageResults, pr.buildOutcome,
		pr.articles, pr.skipped, pr.categories, pr.unresolvedLinks)
	return pr
}

// Registry exposes the backing registry for textfile export.
func (pr *PrometheusRecorder) Registry() *prom.Registry { return pr.registry }

func (pr *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	pr.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	pr.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (pr *PrometheusRecorder) IncBuildOutcome(outcome string) {
	pr.buildOutcome.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) IncArticles(n int) {
	pr.articles.Add(float64(n))
}

func (pr *PrometheusRecorder) IncSkipped(reason string, n int) {
	pr.skipped.WithLabelValues(reason).Add(float64(n))
}

func (pr *PrometheusRecorder) IncCategories(n int) {
	pr.categories.Add(float64(n))
}

func (pr *PrometheusRecorder) IncUnresolvedLinks(n int) {
	pr.unresolvedLinks.Add(float64(n))
}

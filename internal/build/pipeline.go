// Package build orchestrates the batch pipeline that turns salvaged HTML
// snapshots into the output site tree. State flows through explicit stages;
// nothing is process-global and nothing persists between runs except the
// emitted site itself.
package build

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rondayan42/requiem-wiki/internal/config"
	werrors "github.com/rondayan42/requiem-wiki/internal/errors"
	"github.com/rondayan42/requiem-wiki/internal/logfields"
	"github.com/rondayan42/requiem-wiki/internal/metrics"
	"github.com/rondayan42/requiem-wiki/internal/site"
	"github.com/rondayan42/requiem-wiki/internal/util/sets"
	"github.com/rondayan42/requiem-wiki/internal/wiki"
	"github.com/rondayan42/requiem-wiki/internal/workspace"
)

// Options control one build run.
type Options struct {
	// Output overrides the configured output directory when non-empty.
	Output string
	// WriteReport controls emission of build-report.json into the site tree.
	WriteReport bool
	// Recorder receives build metrics; nil means no-op.
	Recorder metrics.Recorder
}

// State is the build context threaded through every stage: the accumulated
// article set, the category graph, and the bookkeeping the renderer needs.
type State struct {
	Config   *config.Config
	Options  Options
	Rules    []wiki.Rule
	Featured []string

	SiteDir  string
	Template *site.PageTemplate
	Roots    []string // resolved local source roots, priority order

	SeenTitles        sets.Set[string]
	TitleToURL        map[string]string           // article title -> site-relative URL
	TitleToSource     map[string]string           // article title -> source snapshot path
	TitleToCategories map[string]sets.Set[string] // the article-category index
	Graph             wiki.Graph
	SearchIndex       []site.SearchEntry
	AZEntries         []site.Entry

	Workspace *workspace.Manager
	Report    *Report
	Recorder  metrics.Recorder
	start     time.Time
}

// Stage is a discrete unit of work in the site build.
type Stage func(ctx context.Context, s *State) error

type namedStage struct {
	name string
	fn   Stage
}

// stages lists the pipeline in execution order. The three category passes
// (scan, category-pages, taxonomy) enrich the same graph idempotently; the
// breadcrumb stage re-extracts articles from their original snapshots once
// the full category index is known.
func stages() []namedStage {
	return []namedStage{
		{"prepare", stagePrepare},
		{"clone", stageClone},
		{"scan", stageScan},
		{"category-pages", stageCategoryPages},
		{"taxonomy", stageTaxonomy},
		{"complete-graph", stageCompleteGraph},
		{"render", stageRender},
		{"breadcrumbs", stageBreadcrumbs},
		{"home", stageHome},
		{"report", stageReport},
	}
}

// Run executes the full pipeline. A run either completes or aborts on the
// first fatal stage error, leaving whatever partial output exists; there is
// no rollback.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	rules, err := cfg.CompiledRules()
	if err != nil {
		return err
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	s := &State{
		Config:            cfg,
		Options:           opts,
		Rules:             rules,
		Featured:          cfg.FeaturedRoots(),
		SeenTitles:        sets.New[string](),
		TitleToURL:        make(map[string]string),
		TitleToSource:     make(map[string]string),
		TitleToCategories: make(map[string]sets.Set[string]),
		Graph:             wiki.NewGraph(),
		Report:            NewReport(uuid.NewString()),
		Recorder:          recorder,
		start:             time.Now(),
	}
	defer func() {
		if s.Workspace != nil {
			if err := s.Workspace.Cleanup(); err != nil {
				slog.Warn("Workspace cleanup failed", logfields.Error(err))
			}
		}
	}()

	slog.Info("Starting build", logfields.BuildID(s.Report.BuildID))
	if err := runStages(ctx, s); err != nil {
		s.Report.Outcome = "failed"
		recorder.IncBuildOutcome("failed")
		return err
	}

	total := time.Since(s.start)
	recorder.ObserveBuildDuration(total)
	recorder.IncBuildOutcome("success")
	slog.Info("Build finished",
		logfields.BuildID(s.Report.BuildID),
		logfields.DurationMS(float64(total.Milliseconds())),
		slog.Int("articles", s.Report.Counts.Articles),
		slog.Int("categories", s.Report.Counts.Categories))
	return nil
}

// runStages executes stages in order, recording timing and stopping on the
// first fatal error. Cancellation is checked between stages only; stages
// themselves are synchronous.
func runStages(ctx context.Context, s *State) error {
	for _, st := range stages() {
		select {
		case <-ctx.Done():
			s.Recorder.IncStageResult(st.name, metrics.ResultCanceled)
			return werrors.Wrap(ctx.Err(), werrors.CategoryRuntime, werrors.SeverityFatal, "build canceled").
				WithContext("stage", st.name)
		default:
		}

		begin := time.Now()
		err := st.fn(ctx, s)
		elapsed := time.Since(begin)
		s.Report.RecordStage(st.name, elapsed)
		s.Recorder.ObserveStageDuration(st.name, elapsed)

		if err != nil {
			s.Recorder.IncStageResult(st.name, metrics.ResultFatal)
			slog.Error("Stage failed", logfields.Stage(st.name), logfields.Error(err))
			return werrors.BuildFailed(st.name, err)
		}
		s.Recorder.IncStageResult(st.name, metrics.ResultSuccess)
		slog.Debug("Stage complete", logfields.Stage(st.name), logfields.DurationMS(float64(elapsed.Milliseconds())))
	}
	return nil
}

// outputDir resolves the effective site directory for this run.
func (s *State) outputDir() string {
	if s.Options.Output != "" {
		return s.Options.Output
	}
	return s.Config.Output.Directory
}

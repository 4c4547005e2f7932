package build

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	werrors "github.com/rondayan42/requiem-wiki/internal/errors"
)

// Report summarizes one build run. It is written as build-report.json into
// the site tree so deployments can show what a rebuild ingested and dropped.
type Report struct {
	BuildID      string             `json:"build_id"`
	StartedAt    time.Time          `json:"started_at"`
	Outcome      string             `json:"outcome"`
	Counts       Counts             `json:"counts"`
	StageTimesMS map[string]float64 `json:"stage_times_ms"`
}

// Counts tallies what the pipeline kept and skipped.
type Counts struct {
	Articles        int `json:"articles"`
	ErrorPages      int `json:"error_pages_skipped"`
	NoStructure     int `json:"no_structure_skipped"`
	Duplicates      int `json:"duplicates_dropped"`
	Unreadable      int `json:"unreadable_skipped"`
	Categories      int `json:"categories"`
	UnresolvedLinks int `json:"unresolved_member_links"`
}

// NewReport creates a report for a run starting now.
func NewReport(buildID string) *Report {
	return &Report{
		BuildID:      buildID,
		StartedAt:    time.Now().UTC(),
		Outcome:      "success",
		StageTimesMS: make(map[string]float64),
	}
}

// RecordStage stores one stage's wall time.
func (r *Report) RecordStage(name string, d time.Duration) {
	r.StageTimesMS[name] = float64(d.Microseconds()) / 1000.0
}

// Write serializes the report into the site directory.
func (r *Report) Write(siteDir string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return werrors.Wrap(err, werrors.CategoryInternal, werrors.SeverityError, "failed to marshal build report")
	}
	path := filepath.Join(siteDir, "build-report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return werrors.OutputError("write build report", err)
	}
	return nil
}

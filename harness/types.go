// harness/types.go
// Package: harness
package harness

import (
	"log/slog"
	"time"

	"github.com/mwiater/framebench/series"
)

// Scenario is one benchmarked implementation strategy and the directory
// holding its run files.
type Scenario struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
}

// SuiteConfig configures one pass over all scenarios.
type SuiteConfig struct {
	// Scenarios in presentation order.
	Scenarios []Scenario `json:"scenarios"`

	// Loader decodes run files; its Variant is fixed for the whole suite.
	Loader series.Loader `json:"-"`

	// Stride decides the export stride per scenario.
	Stride series.StridePolicy `json:"stride"`

	// Axis and Budgets drive the threshold queries of the report.
	Axis    series.Axis     `json:"axis"`
	Budgets []series.Budget `json:"budgets"`

	// FPSTargets are frame rates looked up on the frame time axis.
	FPSTargets []float64 `json:"fps_targets"`

	// KeepGoing records a failing scenario and continues with the next one
	// instead of aborting the suite.
	KeepGoing bool `json:"keep_going"`

	Logger *slog.Logger `json:"-"`
}

// ScenarioResult is the merged series of one scenario.
type ScenarioResult struct {
	Scenario Scenario      `json:"scenario"`
	Runs     int           `json:"runs"`
	Series   series.Series `json:"-"`
}

// SuiteResult is the artifact returned by RunSuite. Each series is computed
// once and shared by the export and report views.
type SuiteResult struct {
	Results     []ScenarioResult `json:"results"`
	Failures    map[string]error `json:"-"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// ExportResult describes one written export file.
type ExportResult struct {
	Scenario string `json:"scenario"`
	Path     string `json:"path"`
	Stride   int    `json:"stride"`
	Frames   int    `json:"frames"` // frames in the merged series
	Rows     int    `json:"rows"`   // rows written after downsampling
}

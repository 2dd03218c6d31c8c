// report/types.go
// Package: report
package report

import "time"

// BudgetPoint is the interpolated entity count for one time budget.
type BudgetPoint struct {
	Label    string  `json:"label"`
	Seconds  float64 `json:"seconds"`
	Entities float64 `json:"entities"`
}

// Summary holds the scalar rollups of one scenario series.
type Summary struct {
	Scenario            string        `json:"scenario"`
	Frames              int           `json:"frames"`
	MeanCacheMissRate   float64       `json:"mean_cache_miss_rate"`
	MeanCacheReferences float64       `json:"mean_cache_references"`
	FrameTimeP50        float64       `json:"frame_time_p50_s"`
	FrameTimeP95        float64       `json:"frame_time_p95_s"`
	MaxEntities         float64       `json:"max_entities"`
	Axis                string        `json:"axis"`
	Budgets             []BudgetPoint `json:"budgets"`
	FPSPoints           []BudgetPoint `json:"fps_points"` // always on frame_time
}

// Report maps scenario names to their summaries. Order keeps the configured
// scenario order for presentation; Failures lists scenarios that were
// skipped because their pipeline failed.
type Report struct {
	Order       []string           `json:"order"`
	Summaries   map[string]Summary `json:"summaries"`
	Failures    map[string]string  `json:"failures,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// Summary returns the summary for name, if present.
func (r Report) Summary(name string) (Summary, bool) {
	s, ok := r.Summaries[name]
	return s, ok
}

// Ordered returns the summaries in configured order.
func (r Report) Ordered() []Summary {
	out := make([]Summary, 0, len(r.Order))
	for _, name := range r.Order {
		if s, ok := r.Summaries[name]; ok {
			out = append(out, s)
		}
	}
	return out
}

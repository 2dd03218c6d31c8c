// report/summarize.go
// Package: report
package report

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mwiater/framebench/series"
)

// Summarize computes the scenario summary of s: mean cache-miss rate and
// cache references over all frames, frame time percentiles, the entity
// count at each budget on axis, and the entity count at each frame rate in
// fps on the frame time axis.
func Summarize(s series.Series, axis series.Axis, budgets []series.Budget, fps []float64) (Summary, error) {
	if s.Len() == 0 {
		return Summary{}, fmt.Errorf("%s: %w", s.Name, series.ErrEmptySeries)
	}

	missRate := make([]float64, s.Len())
	refs := make([]float64, s.Len())
	frameTime := make([]float64, s.Len())
	entities := make([]float64, s.Len())
	for i, f := range s.Frames {
		missRate[i] = f.CacheMissRate
		refs[i] = f.CacheReferences
		frameTime[i] = f.FrameTime
		entities[i] = f.EntityCount
	}

	sum := Summary{
		Scenario:            s.Name,
		Frames:              s.Len(),
		MeanCacheMissRate:   stat.Mean(missRate, nil),
		MeanCacheReferences: stat.Mean(refs, nil),
		FrameTimeP50:        quantile(frameTime, 0.50),
		FrameTimeP95:        quantile(frameTime, 0.95),
		MaxEntities:         floats.Max(entities),
		Axis:                string(axis),
		Budgets:             make([]BudgetPoint, 0, len(budgets)),
		FPSPoints:           make([]BudgetPoint, 0, len(fps)),
	}
	for _, b := range budgets {
		n, err := series.EntitiesAt(s, axis, b.Seconds)
		if err != nil {
			return Summary{}, fmt.Errorf("budget %s: %w", b.Label, err)
		}
		sum.Budgets = append(sum.Budgets, BudgetPoint{Label: b.Label, Seconds: b.Seconds, Entities: n})
	}
	for _, target := range fps {
		if target <= 0 {
			return Summary{}, fmt.Errorf("fps target %v must be positive", target)
		}
		secs := series.FrameTimeForFPS(target)
		n, err := series.EntitiesAt(s, series.AxisFrameTime, secs)
		if err != nil {
			return Summary{}, fmt.Errorf("%g FPS: %w", target, err)
		}
		sum.FPSPoints = append(sum.FPSPoints, BudgetPoint{Label: fmt.Sprintf("%g FPS", target), Seconds: secs, Entities: n})
	}
	return sum, nil
}

// quantile returns the q-quantile of values using linear interpolation
// between order statistics. values is not modified.
func quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return stat.Quantile(q, stat.LinInterp, sorted, nil)
}

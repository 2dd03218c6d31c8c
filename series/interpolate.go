// series/interpolate.go
// Package: series
package series

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Axis names the time-like independent variable of a threshold query.
type Axis string

const (
	AxisFrameTime   Axis = "frame_time"
	AxisPhysicsTime Axis = "physics_time"
)

// ParseAxis validates an axis name from configuration or flags.
func ParseAxis(s string) (Axis, error) {
	switch a := Axis(strings.ToLower(strings.TrimSpace(s))); a {
	case AxisFrameTime, AxisPhysicsTime:
		return a, nil
	default:
		return "", fmt.Errorf("unknown axis %q (want %s or %s)", s, AxisFrameTime, AxisPhysicsTime)
	}
}

// value returns the axis value of f and whether f carries one.
func (a Axis) value(f Frame) (float64, bool) {
	switch a {
	case AxisFrameTime:
		return f.FrameTime, true
	case AxisPhysicsTime:
		return f.PhysicsTime, f.HasPhysics
	default:
		return 0, false
	}
}

// Budget is a fixed time target, in seconds, on the query axis.
type Budget struct {
	Label   string  `json:"label" mapstructure:"label"`
	Seconds float64 `json:"seconds" mapstructure:"seconds"`
}

// DefaultBudgets are the physics time budgets used in comparison reports.
func DefaultBudgets() []Budget {
	return []Budget{
		{Label: "16ms (60 FPS)", Seconds: 0.016},
		{Label: "8ms", Seconds: 0.008},
		{Label: "4ms", Seconds: 0.004},
		{Label: "2ms", Seconds: 0.002},
		{Label: "1ms", Seconds: 0.001},
	}
}

// DefaultFPSTargets are the frame rates whose entity counts are compared on
// the frame time axis.
func DefaultFPSTargets() []float64 {
	return []float64{60, 100, 120, 240}
}

// FrameTimeForFPS converts a frame rate target into a frame time in seconds.
func FrameTimeForFPS(fps float64) float64 {
	return 1 / fps
}

// Interp evaluates the piecewise-linear function through (xs[i], ys[i]) at
// x. xs must be ascending. Outside [xs[0], xs[n-1]] the boundary value is
// returned. For repeated xs the left bracket is the last sample with
// xs[j] <= x, so a hit on a sample returns that sample's y exactly.
func Interp(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x < xs[0] {
		return ys[0]
	}
	if x > xs[n-1] {
		return ys[n-1]
	}

	j := sort.Search(n, func(i int) bool { return xs[i] > x }) - 1
	if xs[j] == x {
		return ys[j]
	}
	t := (x - xs[j]) / (xs[j+1] - xs[j])
	return ys[j] + t*(ys[j+1]-ys[j])
}

// EntitiesAt estimates the entity count at which the axis value of s equals
// target. Frames are re-sorted by the axis value first: neither frame time
// nor entity count is monotonic in frame index.
func EntitiesAt(s Series, axis Axis, target float64) (float64, error) {
	if len(s.Frames) == 0 {
		return 0, fmt.Errorf("%s: %w", s.Name, ErrEmptySeries)
	}
	xs, ys := sortedByAxis(s, axis)
	if len(xs) == 0 {
		return 0, fmt.Errorf("%s: %s: %w", s.Name, axis, ErrAxisUnavailable)
	}
	return Interp(target, xs, ys), nil
}

// sortedByAxis returns the axis values and entity counts of the frames that
// carry the axis, stable-sorted ascending by axis value.
func sortedByAxis(s Series, axis Axis) (xs, ys []float64) {
	type point struct{ x, y float64 }
	pts := make([]point, 0, len(s.Frames))
	for _, f := range s.Frames {
		if x, ok := axis.value(f); ok {
			pts = append(pts, point{x, f.EntityCount})
		}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].x < pts[j].x })

	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.x, p.y
	}
	return xs, ys
}

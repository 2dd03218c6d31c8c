// series/downsample.go
// Package: series
package series

import "slices"

// StridePolicy decides the export stride per scenario name.
type StridePolicy struct {
	Default      int      // stride for ordinary scenarios
	Reduced      int      // stride for names in ReducedNames
	ReducedNames []string // scenarios exported at the reduced stride
}

// DefaultStridePolicy keeps every 2nd frame, and every 5th for the
// baseline without physics, which runs far more frames than the others.
func DefaultStridePolicy() StridePolicy {
	return StridePolicy{Default: 2, Reduced: 5, ReducedNames: []string{"baseline-no-physics"}}
}

// Stride returns the stride for the named scenario.
func (p StridePolicy) Stride(name string) int {
	if slices.Contains(p.ReducedNames, name) {
		return p.Reduced
	}
	return p.Default
}

// Downsample keeps frames 0, stride, 2*stride, ... of s. Values are copied
// as they are; nothing is interpolated. A stride below 1 keeps every frame.
func Downsample(s Series, stride int) Series {
	if stride < 1 {
		stride = 1
	}
	out := Series{Name: s.Name, Frames: make([]Frame, 0, (len(s.Frames)+stride-1)/stride)}
	for i := 0; i < len(s.Frames); i += stride {
		out.Frames = append(out.Frames, s.Frames[i])
	}
	return out
}

// series/aggregate.go
// Package: series
package series

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// frameSamples collects every run's values for one frame index.
type frameSamples struct {
	entities, frameTime, fps, physics, refs, misses, missRate []float64
}

func (fs *frameSamples) add(r Record) {
	fs.entities = append(fs.entities, float64(r.EntityCount))
	fs.frameTime = append(fs.frameTime, r.FrameTime)
	fs.fps = append(fs.fps, r.FPS)
	if r.HasPhysics {
		fs.physics = append(fs.physics, r.PhysicsTime)
	}
	fs.refs = append(fs.refs, float64(r.CacheReferences))
	fs.misses = append(fs.misses, float64(r.CacheMisses))
	fs.missRate = append(fs.missRate, r.CacheMissRate)
}

// Aggregate merges the runs of one scenario into a Series: records are
// grouped by frame index and each field is averaged independently over the
// runs that report that index. Indices missing from some runs still produce
// a row. Frames are returned ascending by frame index and the result does
// not depend on the order of runs.
func Aggregate(name string, runs []Run) Series {
	groups := make(map[int]*frameSamples)
	for _, run := range runs {
		for _, rec := range run.Records {
			g, ok := groups[rec.FrameIndex]
			if !ok {
				g = &frameSamples{}
				groups[rec.FrameIndex] = g
			}
			g.add(rec)
		}
	}

	indices := make([]int, 0, len(groups))
	for idx := range groups {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	frames := make([]Frame, 0, len(indices))
	for _, idx := range indices {
		g := groups[idx]
		f := Frame{
			FrameIndex:      idx,
			EntityCount:     orderedMean(g.entities),
			FrameTime:       orderedMean(g.frameTime),
			FPS:             orderedMean(g.fps),
			CacheReferences: orderedMean(g.refs),
			CacheMisses:     orderedMean(g.misses),
			CacheMissRate:   orderedMean(g.missRate),
			Runs:            len(g.entities),
		}
		if len(g.physics) > 0 {
			f.PhysicsTime = orderedMean(g.physics)
			f.HasPhysics = true
		}
		frames = append(frames, f)
	}
	return Series{Name: name, Frames: frames}
}

// orderedMean sorts values in place before averaging so the floating point
// sum is the same for every input ordering.
func orderedMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	return stat.Mean(values, nil)
}

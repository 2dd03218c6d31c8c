// series/types.go
// Package: series
package series

// Record is one observation at a discrete frame index within one run.
type Record struct {
	FrameIndex      int
	EntityCount     int64
	FrameTime       float64 // seconds
	FPS             float64
	PhysicsTime     float64 // seconds, only meaningful when HasPhysics is set
	HasPhysics      bool
	CacheReferences int64
	CacheMisses     int64
	CacheMissRate   float64
}

// Run is the ordered record trace decoded from one run file.
type Run struct {
	Path    string
	Records []Record
}

// Frame is one row of a Series: every field is the mean over the runs
// that reported FrameIndex.
type Frame struct {
	FrameIndex      int     `json:"frame_index"`
	EntityCount     float64 `json:"entity_count"`
	FrameTime       float64 `json:"frame_time"`
	FPS             float64 `json:"fps"`
	PhysicsTime     float64 `json:"physics_time,omitempty"`
	HasPhysics      bool    `json:"-"`
	CacheReferences float64 `json:"cache_references"`
	CacheMisses     float64 `json:"cache_misses"`
	CacheMissRate   float64 `json:"cache_miss_rate"`
	Runs            int     `json:"runs"` // number of runs contributing to this row
}

// Series is the merged time series of one scenario, ascending by frame index.
type Series struct {
	Name   string
	Frames []Frame
}

// Len returns the number of frames in the series.
func (s Series) Len() int { return len(s.Frames) }

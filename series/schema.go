// series/schema.go
// Package: series
package series

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Variant selects the column layout of a run file. It is resolved once per
// load and never guessed from file contents.
type Variant int

const (
	// VariantA is (frame_index, entity_count, frame_time_us, fps,
	// cache_references, cache_misses, cache_miss_rate).
	VariantA Variant = iota + 1
	// VariantB is (frame_index, entity_count, fps, frame_time_s,
	// physics_time_s, cache_references, cache_misses, cache_miss_rate).
	VariantB
)

// ParseVariant maps a configuration selector ("a" or "b") to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return VariantA, nil
	case "b":
		return VariantB, nil
	default:
		return 0, fmt.Errorf("unknown schema variant %q (want a or b)", s)
	}
}

func (v Variant) String() string {
	switch v {
	case VariantA:
		return "a"
	case VariantB:
		return "b"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Fields returns the number of columns a row must carry under v.
func (v Variant) Fields() int {
	switch v {
	case VariantA:
		return 7
	case VariantB:
		return 8
	default:
		return 0
	}
}

// HasPhysics reports whether rows of v carry a physics time column.
func (v Variant) HasPhysics() bool { return v == VariantB }

// Decode converts one row of positional fields into a Record. Errors are
// *MalformedRecordError values without file position; the loader fills it in.
func (v Variant) Decode(fields []string) (Record, error) {
	if v.Fields() == 0 {
		return Record{}, malformed("unknown schema variant %d", int(v))
	}
	if len(fields) != v.Fields() {
		return Record{}, malformed("schema %s expects %d fields, got %d", v, v.Fields(), len(fields))
	}

	p := fieldParser{fields: fields}
	var r Record
	switch v {
	case VariantA:
		r.FrameIndex = int(p.count(0, "frame_index"))
		r.EntityCount = p.count(1, "entity_count")
		r.FrameTime = p.float(2, "frame_time_us") / 1e6
		r.FPS = p.float(3, "fps")
		r.CacheReferences = p.count(4, "cache_references")
		r.CacheMisses = p.count(5, "cache_misses")
		r.CacheMissRate = p.float(6, "cache_miss_rate")
	case VariantB:
		r.FrameIndex = int(p.count(0, "frame_index"))
		r.EntityCount = p.count(1, "entity_count")
		r.FPS = p.float(2, "fps")
		r.FrameTime = p.float(3, "frame_time_s")
		r.PhysicsTime = p.float(4, "physics_time_s")
		r.HasPhysics = true
		r.CacheReferences = p.count(5, "cache_references")
		r.CacheMisses = p.count(6, "cache_misses")
		r.CacheMissRate = p.float(7, "cache_miss_rate")
	}
	if p.err != nil {
		return Record{}, p.err
	}

	if r.FrameTime == 0 {
		return Record{}, malformed("frame_time must be positive")
	}
	if r.CacheMissRate > 100 {
		return Record{}, malformed("cache_miss_rate %v exceeds 100", r.CacheMissRate)
	}
	if r.FPS == 0 {
		r.FPS = 1 / r.FrameTime
	}
	return r, nil
}

// fieldParser accumulates the first conversion error so Decode reads as a
// flat list of columns.
type fieldParser struct {
	fields []string
	err    error
}

func (p *fieldParser) float(i int, name string) float64 {
	if p.err != nil {
		return 0
	}
	raw := strings.TrimSpace(p.fields[i])
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.err = malformed("field %d (%s): %q is not numeric", i+1, name, raw)
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		p.err = malformed("field %d (%s): %q is not finite", i+1, name, raw)
		return 0
	}
	if f < 0 {
		p.err = malformed("field %d (%s): %q is negative", i+1, name, raw)
		return 0
	}
	return f
}

// count parses a non-negative integer column. The recorder prints counters
// through a floating point formatter, so "1024.000000" is accepted; a
// fractional value is not.
func (p *fieldParser) count(i int, name string) int64 {
	f := p.float(i, name)
	if p.err != nil {
		return 0
	}
	if f != math.Trunc(f) {
		p.err = malformed("field %d (%s): %q is not an integer", i+1, name, strings.TrimSpace(p.fields[i]))
		return 0
	}
	if f >= 1<<63 {
		p.err = malformed("field %d (%s): %q overflows", i+1, name, strings.TrimSpace(p.fields[i]))
		return 0
	}
	return int64(f)
}

func malformed(format string, args ...any) *MalformedRecordError {
	return &MalformedRecordError{Reason: fmt.Sprintf(format, args...)}
}

// series/errors.go
// Package: series
package series

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord indicates a run file row that does not decode under
	// the declared schema variant.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrNoRunsFound indicates a scenario directory with entries but no run files.
	ErrNoRunsFound = errors.New("no runs found")

	// ErrEmptyScenarioDir indicates a configured scenario directory with no
	// entries at all. This is a configuration problem rather than a data one.
	ErrEmptyScenarioDir = errors.New("scenario directory is empty")

	// ErrEmptySeries indicates a series without frames, for which no
	// interpolation or summary is defined.
	ErrEmptySeries = errors.New("empty series")

	// ErrAxisUnavailable indicates the series carries no value for the
	// requested independent axis (physics time under schema variant A).
	ErrAxisUnavailable = errors.New("axis not present in series")
)

// MalformedRecordError identifies the file and 1-based line of a row that
// failed to decode.
type MalformedRecordError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Path == "" {
		return "malformed record: " + e.Reason
	}
	return fmt.Sprintf("%s:%d: malformed record: %s", e.Path, e.Line, e.Reason)
}

// Is reports ErrMalformedRecord as a match so callers can use errors.Is.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// series/loader.go
// Package: series
package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultRunSuffix is the file name suffix that marks a run file.
const DefaultRunSuffix = ".txt"

// Loader reads every run file of a scenario directory under one schema variant.
type Loader struct {
	Variant Variant

	// Suffix selects run files by name. Empty means DefaultRunSuffix.
	Suffix string

	// SkipHeader drops the first line of each file. The in-engine recorder
	// writes a column header line; hand-made fixtures usually do not.
	SkipHeader bool

	// Logger receives per-file debug output. Nil disables logging.
	Logger *slog.Logger
}

// LoadScenario returns one Run per matching file in dir, in lexical file
// name order. The first malformed row aborts the whole scenario.
func (l Loader) LoadScenario(dir string) ([]Run, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading scenario directory: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrEmptyScenarioDir)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !l.Match(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: no files matching *%s: %w", dir, l.suffix(), ErrNoRunsFound)
	}
	sort.Strings(names)

	runs := make([]Run, 0, len(names))
	for _, name := range names {
		run, err := l.LoadRun(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// Match reports whether a file name selects as a run file.
func (l Loader) Match(name string) bool {
	return strings.HasSuffix(name, l.suffix())
}

// LoadRun decodes a single run file.
func (l Loader) LoadRun(path string) (Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return Run{}, fmt.Errorf("opening run file: %w", err)
	}
	defer f.Close()

	run, err := l.decode(path, f)
	if err != nil {
		return Run{}, err
	}
	if l.Logger != nil {
		l.Logger.Debug("loaded run", "path", path, "records", len(run.Records))
	}
	return run, nil
}

func (l Loader) decode(path string, r io.Reader) (Run, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field count is checked per variant
	cr.ReuseRecord = true

	run := Run{Path: path}
	seen := make(map[int]int)
	first := true
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return Run{}, &MalformedRecordError{Path: path, Line: perr.Line, Reason: perr.Err.Error()}
			}
			return Run{}, fmt.Errorf("reading %s: %w", path, err)
		}
		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if l.SkipHeader {
				continue
			}
		}

		rec, err := l.Variant.Decode(fields)
		if err != nil {
			var merr *MalformedRecordError
			if errors.As(err, &merr) {
				merr.Path, merr.Line = path, line
				return Run{}, merr
			}
			return Run{}, err
		}
		if prev, dup := seen[rec.FrameIndex]; dup {
			return Run{}, &MalformedRecordError{
				Path:   path,
				Line:   line,
				Reason: fmt.Sprintf("frame_index %d already recorded on line %d", rec.FrameIndex, prev),
			}
		}
		seen[rec.FrameIndex] = line
		run.Records = append(run.Records, rec)
	}
	return run, nil
}

func (l Loader) suffix() string {
	if l.Suffix == "" {
		return DefaultRunSuffix
	}
	return l.Suffix
}

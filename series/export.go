// series/export.go
// Package: series
package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// ExportHeader names the columns of an exported series.
var ExportHeader = []string{
	"frame_index",
	"entity_count",
	"frame_time",
	"fps",
	"physics_time",
	"cache_references",
	"cache_misses",
	"cache_miss_rate",
}

// WriteCSV writes s as a header row plus one row per frame. physics_time is
// left empty for frames that carry none.
func WriteCSV(w io.Writer, s Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}
	row := make([]string, len(ExportHeader))
	for _, f := range s.Frames {
		row[0] = strconv.Itoa(f.FrameIndex)
		row[1] = formatFloat(f.EntityCount)
		row[2] = formatFloat(f.FrameTime)
		row[3] = formatFloat(f.FPS)
		row[4] = ""
		if f.HasPhysics {
			row[4] = formatFloat(f.PhysicsTime)
		}
		row[5] = formatFloat(f.CacheReferences)
		row[6] = formatFloat(f.CacheMisses)
		row[7] = formatFloat(f.CacheMissRate)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportPath is where the export of scenario name lives inside its directory.
func ExportPath(dir, name string) string {
	return filepath.Join(dir, name+".csv")
}

// ExportFile writes s to path, replacing any previous export. The data is
// written to a temporary file in the same directory and renamed into place.
func ExportFile(path string, s Series) error {
	if len(s.Frames) == 0 {
		return fmt.Errorf("%s: %w", s.Name, ErrEmptySeries)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating export: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, s); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming export into place: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

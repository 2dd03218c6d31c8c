// harness/export.go
// Package: harness
package harness

import (
	"github.com/mwiater/framebench/series"
)

// Export downsamples every merged scenario of res and writes it next to the
// run files as <scenario>.csv. The first write error aborts the export.
func Export(cfg SuiteConfig, res SuiteResult) ([]ExportResult, error) {
	out := make([]ExportResult, 0, len(res.Results))
	for _, sr := range res.Results {
		stride := cfg.Stride.Stride(sr.Scenario.Name)
		ds := series.Downsample(sr.Series, stride)
		path := series.ExportPath(sr.Scenario.Dir, sr.Scenario.Name)
		if err := series.ExportFile(path, ds); err != nil {
			return out, err
		}
		cfg.logger().Debug("exported scenario", "scenario", sr.Scenario.Name, "path", path, "rows", ds.Len())
		out = append(out, ExportResult{
			Scenario: sr.Scenario.Name,
			Path:     path,
			Stride:   stride,
			Frames:   sr.Series.Len(),
			Rows:     ds.Len(),
		})
	}
	return out, nil
}

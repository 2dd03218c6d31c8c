// harness/results.go
// Package: harness
package harness

import (
	"fmt"

	"github.com/mwiater/framebench/report"
)

// BuildReport summarizes every merged scenario of res. Scenarios that
// already failed to load are carried over as report failures. A summary
// error aborts the report unless cfg.KeepGoing is set.
func BuildReport(cfg SuiteConfig, res SuiteResult) (report.Report, error) {
	rep := report.Report{
		Summaries:   make(map[string]report.Summary, len(res.Results)),
		Failures:    map[string]string{},
		GeneratedAt: res.GeneratedAt,
	}
	for name, err := range res.Failures {
		rep.Failures[name] = err.Error()
	}

	for _, sr := range res.Results {
		sum, err := report.Summarize(sr.Series, cfg.Axis, cfg.Budgets, cfg.FPSTargets)
		if err != nil {
			err = fmt.Errorf("scenario %s: %w", sr.Scenario.Name, err)
			if !cfg.KeepGoing {
				return report.Report{}, err
			}
			cfg.logger().Warn("summary failed", "scenario", sr.Scenario.Name, "error", err)
			rep.Failures[sr.Scenario.Name] = err.Error()
			continue
		}
		rep.Summaries[sr.Scenario.Name] = sum
	}

	for _, sc := range cfg.Scenarios {
		if _, ok := rep.Summaries[sc.Name]; ok {
			rep.Order = append(rep.Order, sc.Name)
		}
	}
	return rep, nil
}

// harness/runner.go
// Package: harness
package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mwiater/framebench/series"
)

// RunSuite loads and merges every configured scenario, one at a time.
// Without KeepGoing the first failing scenario aborts the suite and its
// error is returned; with KeepGoing it is recorded in Failures.
func RunSuite(ctx context.Context, cfg SuiteConfig) (SuiteResult, error) {
	if len(cfg.Scenarios) == 0 {
		return SuiteResult{}, errors.New("at least one scenario is required")
	}
	if cfg.Loader.Variant.Fields() == 0 {
		return SuiteResult{}, errors.New("a schema variant is required")
	}
	logger := cfg.logger()

	res := SuiteResult{Failures: map[string]error{}}
	for _, sc := range cfg.Scenarios {
		if err := ctx.Err(); err != nil {
			return SuiteResult{}, err
		}

		logger.Info("loading scenario", "scenario", sc.Name, "dir", sc.Dir)
		sr, err := LoadScenario(cfg.Loader, sc)
		if err != nil {
			if !cfg.KeepGoing {
				return SuiteResult{}, err
			}
			logger.Warn("scenario failed", "scenario", sc.Name, "error", err)
			res.Failures[sc.Name] = err
			continue
		}
		logger.Debug("merged scenario", "scenario", sc.Name, "runs", sr.Runs, "frames", sr.Series.Len())
		res.Results = append(res.Results, sr)
	}
	res.GeneratedAt = time.Now()
	return res, nil
}

// LoadScenario runs the loader and frame aggregator for one scenario.
func LoadScenario(l series.Loader, sc Scenario) (ScenarioResult, error) {
	runs, err := l.LoadScenario(sc.Dir)
	if err != nil {
		return ScenarioResult{}, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	s := series.Aggregate(sc.Name, runs)
	if s.Len() == 0 {
		return ScenarioResult{}, fmt.Errorf("scenario %s: %w", sc.Name, series.ErrEmptySeries)
	}
	return ScenarioResult{Scenario: sc, Runs: len(runs), Series: s}, nil
}

// Find returns the result for the named scenario.
func (r SuiteResult) Find(name string) (ScenarioResult, bool) {
	for _, sr := range r.Results {
		if sr.Scenario.Name == name {
			return sr, true
		}
	}
	return ScenarioResult{}, false
}

func (cfg SuiteConfig) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.New(slog.DiscardHandler)
}

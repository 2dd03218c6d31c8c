package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/framebench/series"
)

// withTempWorkdir changes into a fresh temporary directory for the test.
func withTempWorkdir(t *testing.T) string {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	withTempWorkdir(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "./results", cfg.ResultsDir)
	assert.Equal(t, "b", cfg.Schema)
	assert.Equal(t, ".txt", cfg.RunSuffix)
	assert.Equal(t, 2, cfg.Stride.Default)
	assert.Equal(t, 5, cfg.Stride.Reduced)
	assert.Equal(t, []string{"baseline-no-physics"}, cfg.Stride.ReducedNames)
	assert.Equal(t, "physics_time", cfg.BudgetAxis)
	assert.Equal(t, series.DefaultBudgets(), cfg.Budgets)
	assert.Equal(t, []float64{60, 100, 120, 240}, cfg.FPSTargets)
	require.Len(t, cfg.Scenarios, 4)
	assert.Equal(t, Scenario{Name: "record-list", Path: "record-list"}, cfg.Scenarios[0])
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := withTempWorkdir(t)
	content := `
results_dir: /data/results
schema: a
skip_header: true
budget_axis: frame_time
stride:
  default: 3
  reduced: 7
  reduced_names: [baseline]
budgets:
  - {label: "60 FPS", seconds: 0.0166667}
  - {label: "240 FPS", seconds: 0.0041667}
scenarios:
  - {name: record-list, path: record-list}
  - {name: spatial-hash, path: /abs/spatial-hash}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte(content), 0o644))
	t.Setenv("FRAMEBENCH_SCHEMA", "b")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "b", cfg.Schema, "environment overrides the file")
	assert.True(t, cfg.SkipHeader)
	assert.Equal(t, "frame_time", cfg.BudgetAxis)
	assert.Equal(t, 3, cfg.Stride.Default)
	assert.Equal(t, []string{"baseline"}, cfg.Stride.ReducedNames)
	require.Len(t, cfg.Budgets, 2)
	assert.Equal(t, "240 FPS", cfg.Budgets[1].Label)

	assert.Equal(t, filepath.Join("/data/results", "record-list"), cfg.ScenarioDir(cfg.Scenarios[0]))
	assert.Equal(t, "/abs/spatial-hash", cfg.ScenarioDir(cfg.Scenarios[1]))

	sc, ok := cfg.Lookup("spatial-hash")
	require.True(t, ok)
	assert.Equal(t, "/abs/spatial-hash", sc.Path)
	_, ok = cfg.Lookup("missing")
	assert.False(t, ok)
}

func TestLoad_SchemaAUsesFrameTimeAxis(t *testing.T) {
	dir := withTempWorkdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("schema: a\n"), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "frame_time", cfg.BudgetAxis)

	suite, err := cfg.Suite()
	require.NoError(t, err)
	assert.Equal(t, series.AxisFrameTime, suite.Axis)
	assert.Equal(t, series.DefaultFPSTargets(), suite.FPSTargets)
}

func TestLoad_SchemaARejectsPhysicsAxis(t *testing.T) {
	dir := withTempWorkdir(t)
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema: a\nbudget_axis: physics_time\n"), 0o644))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "physics time")
}

func TestDefaultAxis(t *testing.T) {
	assert.Equal(t, series.AxisFrameTime, DefaultAxis("a"))
	assert.Equal(t, series.AxisPhysicsTime, DefaultAxis("b"))
	assert.Equal(t, series.AxisPhysicsTime, DefaultAxis(""))
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	withTempWorkdir(t)
	_, err := Load(viper.New(), "nope.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Schema:     "a",
			RunSuffix:  ".txt",
			Stride:     Stride{Default: 2, Reduced: 5},
			BudgetAxis: "frame_time",
			Budgets:    series.DefaultBudgets(),
			Scenarios:  []Scenario{{Name: "a", Path: "a"}},
		}
	}
	require.NoError(t, valid().Validate())

	tests := map[string]func(*Config){
		"schema":         func(c *Config) { c.Schema = "z" },
		"axis":           func(c *Config) { c.BudgetAxis = "fps" },
		"suffix":         func(c *Config) { c.RunSuffix = "" },
		"csv suffix":     func(c *Config) { c.RunSuffix = ".CSV" },
		"stride":         func(c *Config) { c.Stride.Reduced = 0 },
		"no scenarios":   func(c *Config) { c.Scenarios = nil },
		"unnamed":        func(c *Config) { c.Scenarios[0].Name = "" },
		"duplicate":      func(c *Config) { c.Scenarios = append(c.Scenarios, Scenario{Name: "a", Path: "b"}) },
		"budget seconds": func(c *Config) { c.Budgets[0].Seconds = 0 },
		"physics axis":   func(c *Config) { c.BudgetAxis = "physics_time" },
		"fps target":     func(c *Config) { c.FPSTargets = []float64{60, -1} },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestSuite(t *testing.T) {
	cfg := Config{
		ResultsDir: "results",
		Schema:     "a",
		RunSuffix:  ".log",
		SkipHeader: true,
		Stride:     Stride{Default: 2, Reduced: 5, ReducedNames: []string{"baseline-no-physics"}},
		BudgetAxis: "frame_time",
		Budgets:    series.DefaultBudgets(),
		Scenarios:  []Scenario{{Name: "baseline-no-physics", Path: "baseline"}},
		KeepGoing:  true,
	}
	suite, err := cfg.Suite()
	require.NoError(t, err)

	assert.Equal(t, series.VariantA, suite.Loader.Variant)
	assert.Equal(t, ".log", suite.Loader.Suffix)
	assert.True(t, suite.Loader.SkipHeader)
	assert.Equal(t, series.AxisFrameTime, suite.Axis)
	assert.True(t, suite.KeepGoing)
	require.Len(t, suite.Scenarios, 1)
	assert.Equal(t, filepath.Join("results", "baseline"), suite.Scenarios[0].Dir)
	assert.Equal(t, 5, suite.Stride.Stride("baseline-no-physics"))
}

// Package config loads the framebench configuration through viper: an
// optional YAML/JSON file, FRAMEBENCH_* environment variables and built-in
// defaults, in that order of precedence after explicit flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mwiater/framebench/harness"
	"github.com/mwiater/framebench/series"
)

// EnvPrefix is the prefix of environment overrides, e.g. FRAMEBENCH_SCHEMA.
const EnvPrefix = "FRAMEBENCH"

// DefaultFile is looked up in the working directory when --config is unset.
const DefaultFile = "framebench.yaml"

// Scenario maps a display name to its run directory.
type Scenario struct {
	Name string `mapstructure:"name" json:"name"`
	Path string `mapstructure:"path" json:"path"`
}

// Stride mirrors series.StridePolicy for decoding.
type Stride struct {
	Default      int      `mapstructure:"default" json:"default"`
	Reduced      int      `mapstructure:"reduced" json:"reduced"`
	ReducedNames []string `mapstructure:"reduced_names" json:"reduced_names"`
}

// Config is the decoded configuration.
type Config struct {
	ResultsDir string          `mapstructure:"results_dir" json:"results_dir"`
	Schema     string          `mapstructure:"schema" json:"schema"`
	RunSuffix  string          `mapstructure:"run_suffix" json:"run_suffix"`
	SkipHeader bool            `mapstructure:"skip_header" json:"skip_header"`
	Stride     Stride          `mapstructure:"stride" json:"stride"`
	BudgetAxis string          `mapstructure:"budget_axis" json:"budget_axis"`
	Budgets    []series.Budget `mapstructure:"budgets" json:"budgets"`
	FPSTargets []float64       `mapstructure:"fps_targets" json:"fps_targets"`
	Scenarios  []Scenario      `mapstructure:"scenarios" json:"scenarios"`
	KeepGoing  bool            `mapstructure:"keep_going" json:"keep_going"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	sp := series.DefaultStridePolicy()
	v.SetDefault("results_dir", "./results")
	v.SetDefault("schema", "b")
	v.SetDefault("run_suffix", series.DefaultRunSuffix)
	v.SetDefault("skip_header", false)
	v.SetDefault("stride.default", sp.Default)
	v.SetDefault("stride.reduced", sp.Reduced)
	v.SetDefault("stride.reduced_names", sp.ReducedNames)
	v.SetDefault("budget_axis", "")
	v.SetDefault("fps_targets", series.DefaultFPSTargets())
	v.SetDefault("keep_going", false)

	var budgets []map[string]any
	for _, b := range series.DefaultBudgets() {
		budgets = append(budgets, map[string]any{"label": b.Label, "seconds": b.Seconds})
	}
	v.SetDefault("budgets", budgets)

	var scenarios []map[string]any
	for _, name := range []string{"record-list", "collision-entity", "collision-relationship", "spatial-hash"} {
		scenarios = append(scenarios, map[string]any{"name": name, "path": name})
	}
	v.SetDefault("scenarios", scenarios)
}

// Load reads the configuration into v and decodes it. An empty path falls
// back to DefaultFile if it exists; an explicit path must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file: %w", err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, filepath.Ext(DefaultFile)))
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("could not read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	if cfg.BudgetAxis == "" {
		cfg.BudgetAxis = string(DefaultAxis(cfg.Schema))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the decoded configuration.
func (c Config) Validate() error {
	variant, err := series.ParseVariant(c.Schema)
	if err != nil {
		return err
	}
	axis, err := c.Axis()
	if err != nil {
		return err
	}
	if axis == series.AxisPhysicsTime && !variant.HasPhysics() {
		return fmt.Errorf("budget_axis %s needs physics time, which schema %s does not record; use %s", axis, variant, series.AxisFrameTime)
	}
	if c.RunSuffix == "" {
		return errors.New("run_suffix must not be empty")
	}
	if strings.EqualFold(c.RunSuffix, ".csv") {
		return errors.New("run_suffix .csv would select exported series as runs")
	}
	if c.Stride.Default < 1 || c.Stride.Reduced < 1 {
		return errors.New("strides must be positive")
	}
	if len(c.Scenarios) == 0 {
		return errors.New("config must contain at least one scenario")
	}
	seen := make(map[string]bool, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if s.Name == "" || s.Path == "" {
			return fmt.Errorf("scenario %d: name and path are required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("scenario %q is listed twice", s.Name)
		}
		seen[s.Name] = true
	}
	for _, b := range c.Budgets {
		if b.Seconds <= 0 {
			return fmt.Errorf("budget %q: seconds must be positive", b.Label)
		}
	}
	for _, fps := range c.FPSTargets {
		if fps <= 0 {
			return fmt.Errorf("fps target %v must be positive", fps)
		}
	}
	return nil
}

// DefaultAxis is the budget axis used when none is configured: physics
// time when the schema records it, frame time otherwise.
func DefaultAxis(schema string) series.Axis {
	if v, err := series.ParseVariant(schema); err == nil && !v.HasPhysics() {
		return series.AxisFrameTime
	}
	return series.AxisPhysicsTime
}

// Axis resolves the configured budget axis, falling back to DefaultAxis.
func (c Config) Axis() (series.Axis, error) {
	if strings.TrimSpace(c.BudgetAxis) == "" {
		return DefaultAxis(c.Schema), nil
	}
	return series.ParseAxis(c.BudgetAxis)
}

// ScenarioDir resolves the run directory of s against ResultsDir.
func (c Config) ScenarioDir(s Scenario) string {
	if filepath.IsAbs(s.Path) {
		return s.Path
	}
	return filepath.Join(c.ResultsDir, s.Path)
}

// Lookup returns the configured scenario called name.
func (c Config) Lookup(name string) (Scenario, bool) {
	for _, s := range c.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// Suite builds the harness configuration. The schema variant and axis are
// resolved here, once, for every load of the invocation.
func (c Config) Suite() (harness.SuiteConfig, error) {
	variant, err := series.ParseVariant(c.Schema)
	if err != nil {
		return harness.SuiteConfig{}, err
	}
	axis, err := c.Axis()
	if err != nil {
		return harness.SuiteConfig{}, err
	}

	sc := harness.SuiteConfig{
		Loader: series.Loader{
			Variant:    variant,
			Suffix:     c.RunSuffix,
			SkipHeader: c.SkipHeader,
		},
		Stride: series.StridePolicy{
			Default:      c.Stride.Default,
			Reduced:      c.Stride.Reduced,
			ReducedNames: c.Stride.ReducedNames,
		},
		Axis:       axis,
		Budgets:    c.Budgets,
		FPSTargets: c.FPSTargets,
		KeepGoing:  c.KeepGoing,
	}
	for _, s := range c.Scenarios {
		sc.Scenarios = append(sc.Scenarios, harness.Scenario{Name: s.Name, Dir: c.ScenarioDir(s)})
	}
	return sc, nil
}

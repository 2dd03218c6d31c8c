// cmd/framebench/query.go
package framebench

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/framebench/harness"
	"github.com/mwiater/framebench/series"
)

var (
	queryScenario string
	queryAxis     string
	querySeconds  []float64
	queryFPS      []float64
)

// queryCmd implements 'query', a threshold lookup on one scenario: the
// entity count at which the chosen time axis reaches each target.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Interpolate the entity count of one scenario at given time targets",
	Long: `The 'query' command merges the runs of one scenario and reports the entity count
at which the frame time or physics time reaches each target. Targets are given
in seconds (--seconds) or as frame rates (--fps, converted to 1/fps seconds).
Targets outside the observed range return the boundary entity count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, suite, err := loadSuite(cmd)
		if err != nil {
			return err
		}
		sc, ok := cfg.Lookup(queryScenario)
		if !ok {
			return fmt.Errorf("unknown scenario %q", queryScenario)
		}
		axis := suite.Axis
		if queryAxis != "" {
			if axis, err = series.ParseAxis(queryAxis); err != nil {
				return err
			}
		}

		targets := append([]float64(nil), querySeconds...)
		for _, fps := range queryFPS {
			if fps <= 0 {
				return fmt.Errorf("fps target %v must be positive", fps)
			}
			targets = append(targets, series.FrameTimeForFPS(fps))
		}
		if len(targets) == 0 {
			return errors.New("at least one --seconds or --fps target is required")
		}

		sr, err := harness.LoadScenario(suite.Loader, harness.Scenario{Name: sc.Name, Dir: cfg.ScenarioDir(sc)})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d runs, %d frames), axis %s\n", scenarioStyle.Render(sc.Name), sr.Runs, sr.Series.Len(), axis)
		for _, t := range targets {
			n, err := series.EntitiesAt(sr.Series, axis, t)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %10.3fms  %10.0f entities\n", t*1000, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVarP(&queryScenario, "scenario", "s", "", "scenario name as configured")
	queryCmd.Flags().StringVar(&queryAxis, "axis", "", "frame_time or physics_time (default: budget_axis from config)")
	queryCmd.Flags().Float64SliceVar(&querySeconds, "seconds", nil, "time targets in seconds")
	queryCmd.Flags().Float64SliceVar(&queryFPS, "fps", nil, "frame rate targets")
	queryCmd.MarkFlagRequired("scenario")
}

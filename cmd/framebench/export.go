// cmd/framebench/export.go
package framebench

import (
	"fmt"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/framebench/harness"
)

var (
	scenarioStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// exportCmd implements 'export', which merges every scenario and writes a
// downsampled <scenario>.csv into the scenario's own directory.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the downsampled merged series of every scenario",
	Long: `The 'export' command merges the runs of every configured scenario and writes
<scenario>.csv into that scenario's directory, keeping every 2nd frame (every
5th for scenarios on the reduced stride list). Existing exports are replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, suite, err := loadSuite(cmd)
		if err != nil {
			return err
		}
		res, err := harness.RunSuite(cmd.Context(), suite)
		if err != nil {
			return err
		}
		written, err := harness.Export(suite, res)
		out := cmd.OutOrStdout()
		for _, w := range written {
			fmt.Fprintf(out, "%s %d/%d frames (stride %d) -> %s\n",
				scenarioStyle.Render(w.Scenario), w.Rows, w.Frames, w.Stride, pathStyle.Render(w.Path))
		}
		for _, name := range slices.Sorted(maps.Keys(res.Failures)) {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("%s: %v", name, res.Failures[name])))
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

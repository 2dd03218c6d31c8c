// cmd/framebench/report.go
package framebench

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/framebench/cli"
	"github.com/mwiater/framebench/harness"
	"github.com/mwiater/framebench/report"
)

var startViewer = cli.StartViewer

// reportCmd implements 'report', which prints the per-scenario comparison
// summaries as a table, as JSON, or in the interactive viewer.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compare scenarios: cache statistics and entities per time budget",
	Long: `The 'report' command merges every configured scenario and prints one summary per
scenario: mean cache-miss rate, mean cache references, frame time percentiles
and the interpolated entity count at each configured time budget and frame rate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, suite, err := loadSuite(cmd)
		if err != nil {
			return err
		}
		res, err := harness.RunSuite(cmd.Context(), suite)
		if err != nil {
			return err
		}
		rep, err := harness.BuildReport(suite, res)
		if err != nil {
			return err
		}

		if viper.GetBool("report.interactive") {
			return startViewer(rep)
		}
		switch format := viper.GetString("report.format"); format {
		case "json":
			return report.WriteJSON(cmd.OutOrStdout(), rep)
		case "table", "":
			_, err := fmt.Fprint(cmd.OutOrStdout(), report.RenderTable(rep))
			return err
		default:
			return fmt.Errorf("unknown report format %q (want table or json)", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringP("format", "f", "table", "output format: table or json")
	reportCmd.Flags().BoolP("interactive", "i", false, "browse the report in an interactive viewer")

	viper.BindPFlag("report.format", reportCmd.Flags().Lookup("format"))
	viper.BindPFlag("report.interactive", reportCmd.Flags().Lookup("interactive"))
}

// cmd/framebench/list_scenarios.go
package framebench

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listScenariosCmd implements 'list scenarios', which prints every
// configured scenario with its run directory and export stride.
var listScenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List configured scenarios and their run directories",
	Long:  `The 'scenarios' subcommand lists every configured scenario, the directory its run files are read from, and the stride its export is written with.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, suite, err := loadSuite(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, sc := range cfg.Scenarios {
			fmt.Fprintf(out, "%s\n  dir:    %s\n  stride: %d\n",
				scenarioStyle.Render(sc.Name), pathStyle.Render(cfg.ScenarioDir(sc)), suite.Stride.Stride(sc.Name))
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(listScenariosCmd)
}

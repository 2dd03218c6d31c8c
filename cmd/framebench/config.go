// cmd/framebench/config.go
package framebench

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the 'config' command group.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Group commands for inspecting configuration",
	Long:  `The 'config' command groups subcommands that inspect the effective framebench configuration. It performs no action on its own.`,
}

// configShowCmd implements 'config show', which pretty-prints the effective
// configuration after file, environment and flag overrides.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `The 'show' subcommand prints the configuration framebench would run with, after defaults, config file, FRAMEBENCH_* environment variables and flags are merged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pp.ColoringEnabled = !viper.GetBool("show.no_color")
		_, err = pp.Fprintln(cmd.OutOrStdout(), cfg)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().Bool("no-color", false, "disable colored output")
	viper.BindPFlag("show.no_color", configShowCmd.Flags().Lookup("no-color"))
}

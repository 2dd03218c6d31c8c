// cmd/framebench/root.go
package framebench

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/framebench/harness"
	"github.com/mwiater/framebench/internal/config"
	"github.com/mwiater/framebench/internal/logging"
)

// rootCmd is the base Cobra command for the framebench application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "framebench",
	Short: "Merge, export and compare ECS frame benchmark runs",
	Long: `framebench merges repeated benchmark runs of each configured scenario into one
series per scenario, exports a downsampled copy next to the run files, and
answers threshold queries such as "how many entities fit in a 4ms physics budget".`,
	SilenceUsage: true,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().Bool("log-json", false, "log in JSON instead of key=value text")
	rootCmd.PersistentFlags().String("results-dir", "", "root directory holding one subdirectory per scenario")
	rootCmd.PersistentFlags().String("schema", "", "run file schema variant: a or b")
	rootCmd.PersistentFlags().Bool("skip-header", false, "drop the first line of every run file")
	rootCmd.PersistentFlags().Bool("keep-going", false, "continue with the next scenario when one fails")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
	viper.BindPFlag("results_dir", rootCmd.PersistentFlags().Lookup("results-dir"))
	viper.BindPFlag("schema", rootCmd.PersistentFlags().Lookup("schema"))
	viper.BindPFlag("skip_header", rootCmd.PersistentFlags().Lookup("skip-header"))
	viper.BindPFlag("keep_going", rootCmd.PersistentFlags().Lookup("keep-going"))
}

// newLogger builds the command logger from the bound flags.
func newLogger(cmd *cobra.Command) *slog.Logger {
	return logging.New(logging.Options{
		Verbose: viper.GetBool("verbose"),
		JSON:    viper.GetBool("log_json"),
		Output:  cmd.ErrOrStderr(),
	})
}

// loadConfig reads the configuration named by --config through the global
// viper instance, so bound flags take precedence over file and defaults.
func loadConfig() (config.Config, error) {
	return config.Load(viper.GetViper(), viper.GetString("config"))
}

// loadSuite loads the configuration and turns it into a harness suite.
func loadSuite(cmd *cobra.Command) (config.Config, harness.SuiteConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, harness.SuiteConfig{}, err
	}
	suite, err := cfg.Suite()
	if err != nil {
		return config.Config{}, harness.SuiteConfig{}, err
	}
	logger := newLogger(cmd)
	suite.Logger = logger
	suite.Loader.Logger = logger
	return cfg, suite, nil
}

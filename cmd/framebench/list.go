// cmd/framebench/list.go
package framebench

import (
	"github.com/spf13/cobra"
)

// listCmd groups 'list scenarios' and 'list commands'.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured scenarios or available commands",
	Long:  `The 'list' command shows what an invocation would work on: the configured scenarios with their run directories and export strides, or the framebench command tree. Use one of its subcommands.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

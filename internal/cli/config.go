package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tscbuild/tscbuild/internal/config"
)

func init() {
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the project configuration",
	Long:  `Work with the project configuration stored in ./.tscbuild.yaml.`,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a config file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FilePath()
		if len(args) == 1 {
			path = args[0]
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config validation: %s\n", path)
		return reportValidation(out, path)
	},
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tscbuild/tscbuild/internal/plugin"
)

var transformShowMap bool

func init() {
	transformCmd.Flags().BoolVar(&transformShowMap, "map", false, "Print the source map after the compiled output")
	rootCmd.AddCommand(transformCmd)
}

var transformCmd = &cobra.Command{
	Use:   "transform <file>",
	Short: "Show the compiled output that would replace a source file",
	Long: `Resolve the tsc output that replaces <file> during a build and print it.
tsc is not run; the file must already have been compiled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := plugin.New(plugin.DefaultOptions(), plugin.WithLogger(logger))

		out := cmd.OutOrStdout()
		res := adapter.OnTransform("", args[0])
		if res == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "No compiled output for %s (looked for %s)\n", args[0], plugin.OutputPath(args[0]))
			return nil
		}

		fmt.Fprint(out, res.Content)
		if transformShowMap {
			if res.Map == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "No source map found")
				return nil
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, res.Map)
		}
		return nil
	},
}

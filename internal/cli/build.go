package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tscbuild/tscbuild/internal/bundler"
	"github.com/tscbuild/tscbuild/internal/config"
	"github.com/tscbuild/tscbuild/internal/plugin"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	buildConfigPath string
	buildNoTsc      bool
	buildTscArgs    []string
	buildOutdir     string
	buildFormat     string
	buildPlatform   string
	buildSourcemap  string
)

var printer = message.NewPrinter(language.English)

func init() {
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "Path to the project config file (default ./.tscbuild.yaml)")
	buildCmd.Flags().BoolVar(&buildNoTsc, "no-tsc", false, "Skip tsc and let esbuild compile the sources")
	buildCmd.Flags().StringArrayVar(&buildTscArgs, "tsc-arg", nil, "Argument passed to tsc (repeatable, replaces the configured list)")
	buildCmd.Flags().StringVar(&buildOutdir, "outdir", "", "Bundle output directory")
	buildCmd.Flags().StringVar(&buildFormat, "format", "", "Output format: esm, cjs or iife")
	buildCmd.Flags().StringVar(&buildPlatform, "platform", "", "Target platform: browser, node or neutral")
	buildCmd.Flags().StringVar(&buildSourcemap, "sourcemap", "", "Source maps: none, linked, inline, external or both")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [entry...]",
	Short: "Run tsc, then bundle its output with esbuild",
	Long: `Run the TypeScript compiler once, then bundle with esbuild. For every .ts/.tsx
file esbuild loads, the file tsc emitted under dist/ is used instead; files
without compiled output fall back to esbuild's own TypeScript handling.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBuildConfig(cmd, args)
		if err != nil {
			return err
		}

		adapter := plugin.New(cfg.AdapterOptions(),
			plugin.WithOutput(cmd.OutOrStdout()),
			plugin.WithLogger(logger))

		report, err := bundler.Build(cmd.Context(), cfg, adapter, logger)
		if report != nil {
			for _, w := range report.Warnings {
				logger.Warn("esbuild warning", zap.String("message", w))
			}
		}
		if err != nil {
			return err
		}

		printer.Fprintf(cmd.OutOrStdout(), "Wrote %d file(s) to %s\n", len(report.OutputFiles), cfg.Outdir)
		return nil
	},
}

// loadBuildConfig loads the project config and applies command-line overrides.
func loadBuildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(buildConfigPath)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.EntryPoints = args
	}
	flags := cmd.Flags()
	if flags.Changed("no-tsc") {
		cfg.Enabled = !buildNoTsc
	}
	if flags.Changed("tsc-arg") {
		cfg.Tsc = buildTscArgs
	}
	if flags.Changed("outdir") {
		cfg.Outdir = buildOutdir
	}
	if flags.Changed("format") {
		cfg.Format = buildFormat
	}
	if flags.Changed("platform") {
		cfg.Platform = buildPlatform
	}
	if flags.Changed("sourcemap") {
		cfg.Sourcemap = buildSourcemap
	}

	if cfg.Outdir == "" {
		return nil, fmt.Errorf("outdir must not be empty")
	}
	return cfg, nil
}

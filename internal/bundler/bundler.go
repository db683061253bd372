package bundler

import (
	"context"
	"errors"
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/tscbuild/tscbuild/internal/config"
	"github.com/tscbuild/tscbuild/internal/plugin"
	"go.uber.org/zap"
)

// Report summarizes a finished build.
type Report struct {
	OutputFiles []string
	Warnings    []string
}

// Build runs esbuild once for cfg with adapter installed. esbuild errors,
// including a failed compiler run in the adapter's start hook, are joined
// into the returned error.
func Build(ctx context.Context, cfg *config.Config, adapter *plugin.Adapter, logger *zap.Logger) (*Report, error) {
	opts, err := Options(cfg)
	if err != nil {
		return nil, err
	}
	opts.Plugins = []api.Plugin{adapter.ESBuild(ctx)}

	logger.Debug("starting esbuild",
		zap.Strings("entryPoints", opts.EntryPoints),
		zap.String("outdir", opts.Outdir),
		zap.Bool("tsc", adapter.Enabled()))

	result := api.Build(opts)

	report := &Report{}
	for _, w := range result.Warnings {
		report.Warnings = append(report.Warnings, formatMessage(w))
	}
	for _, f := range result.OutputFiles {
		report.OutputFiles = append(report.OutputFiles, f.Path)
	}

	if len(result.Errors) > 0 {
		errs := make([]error, 0, len(result.Errors))
		for _, m := range result.Errors {
			errs = append(errs, errors.New(formatMessage(m)))
		}
		return report, fmt.Errorf("esbuild failed: %w", errors.Join(errs...))
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// Options translates cfg into esbuild build options without plugins.
func Options(cfg *config.Config) (api.BuildOptions, error) {
	format, err := parseFormat(cfg.Format)
	if err != nil {
		return api.BuildOptions{}, err
	}
	platform, err := parsePlatform(cfg.Platform)
	if err != nil {
		return api.BuildOptions{}, err
	}
	sourcemap, err := parseSourcemap(cfg.Sourcemap)
	if err != nil {
		return api.BuildOptions{}, err
	}
	if len(cfg.EntryPoints) == 0 {
		return api.BuildOptions{}, errors.New("no entry points configured")
	}

	return api.BuildOptions{
		EntryPoints: cfg.EntryPoints,
		Outdir:      cfg.Outdir,
		Bundle:      cfg.Bundle,
		Format:      format,
		Platform:    platform,
		Sourcemap:   sourcemap,
		Write:       true,
		LogLevel:    api.LogLevelSilent,
	}, nil
}

func parseFormat(s string) (api.Format, error) {
	switch s {
	case "", "esm":
		return api.FormatESModule, nil
	case "cjs":
		return api.FormatCommonJS, nil
	case "iife":
		return api.FormatIIFE, nil
	default:
		return api.FormatDefault, fmt.Errorf("unknown format %q: supported formats are esm, cjs and iife", s)
	}
}

func parsePlatform(s string) (api.Platform, error) {
	switch s {
	case "", "browser":
		return api.PlatformBrowser, nil
	case "node":
		return api.PlatformNode, nil
	case "neutral":
		return api.PlatformNeutral, nil
	default:
		return api.PlatformDefault, fmt.Errorf("unknown platform %q: supported platforms are browser, node and neutral", s)
	}
}

func parseSourcemap(s string) (api.SourceMap, error) {
	switch s {
	case "none":
		return api.SourceMapNone, nil
	case "", "linked":
		return api.SourceMapLinked, nil
	case "inline":
		return api.SourceMapInline, nil
	case "external":
		return api.SourceMapExternal, nil
	case "both":
		return api.SourceMapInlineAndExternal, nil
	default:
		return api.SourceMapNone, fmt.Errorf("unknown sourcemap mode %q", s)
	}
}

func formatMessage(m api.Message) string {
	if m.Location == nil {
		return m.Text
	}
	return fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text)
}

package plugin

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// LoadFilter selects the files whose loads the adapter intercepts.
const LoadFilter = `\.tsx?$`

var sourceMappingURL = regexp.MustCompile(`(?m)^//# sourceMappingURL=.*$\n?`)

// ESBuild returns the adapter as an esbuild plugin. OnBuildStart runs in
// esbuild's OnStart slot with ctx, and OnTransform backs an OnLoad callback
// for .ts/.tsx files. A disabled adapter registers its name only.
func (a *Adapter) ESBuild(ctx context.Context) api.Plugin {
	return api.Plugin{
		Name: a.Name(),
		Setup: func(build api.PluginBuild) {
			if !a.opts.Enabled {
				return
			}

			build.OnStart(func() (api.OnStartResult, error) {
				return api.OnStartResult{}, a.OnBuildStart(ctx)
			})

			build.OnLoad(api.OnLoadOptions{Filter: LoadFilter, Namespace: "file"},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					return a.load(args.Path), nil
				})
		},
	}
}

// load converts a transform result into an esbuild load result. An empty
// result lets esbuild fall through to its default handling of the source.
func (a *Adapter) load(path string) api.OnLoadResult {
	res := a.OnTransform("", path)
	if res == nil {
		return api.OnLoadResult{}
	}

	contents := res.Content
	if res.Map != "" {
		contents = inlineSourceMap(contents, res.Map)
	}

	loader := api.LoaderJS
	if strings.HasSuffix(path, ".tsx") {
		loader = api.LoaderJSX
	}

	return api.OnLoadResult{
		PluginName: a.Name(),
		Contents:   &contents,
		Loader:     loader,
		// Relative imports keep resolving next to the original source.
		ResolveDir: filepath.Dir(path),
	}
}

// inlineSourceMap replaces any sourceMappingURL comment in code with an inline
// data URL carrying sourceMap, so esbuild can chain it into its own output.
func inlineSourceMap(code, sourceMap string) string {
	code = sourceMappingURL.ReplaceAllString(code, "")
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	return code + "//# sourceMappingURL=data:application/json;base64," +
		base64.StdEncoding.EncodeToString([]byte(sourceMap)) + "\n"
}

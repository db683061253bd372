package plugin

import (
	"encoding/base64"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Declines(t *testing.T) {
	t.Chdir(t.TempDir())
	a := New(DefaultOptions())

	res := a.load("src/missing.ts")
	assert.Nil(t, res.Contents, "no contents lets esbuild fall back to its default loader")
}

func TestLoad_Substitutes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "dist", "index.js"), "export const one = 1;\n")
	writeFile(t, filepath.Join(dir, "dist", "view.jsx"), "export default () => <p/>;\n")

	a := New(DefaultOptions())

	res := a.load(filepath.Join(dir, "src", "index.ts"))
	require.NotNil(t, res.Contents)
	assert.Equal(t, "export const one = 1;\n", *res.Contents)
	assert.Equal(t, api.LoaderJS, res.Loader)
	assert.Equal(t, filepath.Join(dir, "src"), res.ResolveDir)
	assert.Equal(t, "esbuild-plugin-tsc-build", res.PluginName)

	res = a.load(filepath.Join(dir, "src", "view.tsx"))
	require.NotNil(t, res.Contents)
	assert.Equal(t, api.LoaderJSX, res.Loader)
}

func TestLoad_InlinesSourceMap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "dist", "index.js"), "export const one = 1;\n//# sourceMappingURL=index.js.map\n")
	writeFile(t, filepath.Join(dir, "dist", "index.js.map"), `{"version":3,"sources":["../src/index.ts"]}`)

	a := New(DefaultOptions())
	res := a.load(filepath.Join(dir, "src", "index.ts"))
	require.NotNil(t, res.Contents)

	got := *res.Contents
	assert.NotContains(t, got, "sourceMappingURL=index.js.map")
	assert.True(t, strings.HasPrefix(got, "export const one = 1;\n"))
	assert.Contains(t, got, "//# sourceMappingURL=data:application/json;base64,")
}

func TestInlineSourceMap(t *testing.T) {
	sm := `{"version":3}`
	got := inlineSourceMap("a();", sm)
	want := "a();\n//# sourceMappingURL=data:application/json;base64," +
		base64.StdEncoding.EncodeToString([]byte(sm)) + "\n"
	assert.Equal(t, want, got)
}

func TestESBuild_Name(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		a := New(Options{Enabled: enabled})
		p := a.ESBuild(t.Context())
		assert.Equal(t, "esbuild-plugin-tsc-build", p.Name)
		assert.NotNil(t, p.Setup)
	}
}

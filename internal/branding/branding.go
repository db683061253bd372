// Package branding provides compile-time identity values for the CLI and the
// esbuild plugin it registers.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	PluginName  string `yaml:"plugin_name"`
	EnvPrefix   string `yaml:"env_prefix"`
	ConfigFile  string `yaml:"config_file"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "tscbuild",
			DisplayName: "tscbuild",
			Description: "Build with esbuild using tsc-compiled output",
			PluginName:  "esbuild-plugin-tsc-build",
			EnvPrefix:   "TSCBUILD",
			ConfigFile:  ".tscbuild.yaml",
			GoModule:    "github.com/tscbuild/tscbuild",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "tscbuild").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// PluginName returns the name the adapter registers under with the host
// build tool (e.g., "esbuild-plugin-tsc-build").
func PluginName() string { load(); return defaults.PluginName }

// EnvPrefix returns the environment variable prefix (e.g., "TSCBUILD").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigFile returns the project config file name (e.g., ".tscbuild.yaml").
func ConfigFile() string { load(); return defaults.ConfigFile }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("outdir") → "TSCBUILD_OUTDIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

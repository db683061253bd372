package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
	"github.com/tscbuild/tscbuild/internal/branding"
	"github.com/tscbuild/tscbuild/internal/plugin"
)

const fileType = "yaml"

// Config holds the settings for one build invocation.
type Config struct {
	// Enabled and Tsc feed the adapter; see plugin.Options.
	Enabled bool     `mapstructure:"enabled"`
	Tsc     []string `mapstructure:"tsc"`

	EntryPoints []string `mapstructure:"entryPoints"`
	Outdir      string   `mapstructure:"outdir"`
	Bundle      bool     `mapstructure:"bundle"`
	Format      string   `mapstructure:"format"`
	Platform    string   `mapstructure:"platform"`
	Sourcemap   string   `mapstructure:"sourcemap"`
}

// Defaults for keys absent from both the file and the environment.
const (
	DefaultOutdir    = "build"
	DefaultFormat    = "esm"
	DefaultPlatform  = "browser"
	DefaultSourcemap = "linked"
)

// DefaultEntryPoint is built when no entry points are configured.
const DefaultEntryPoint = "src/index.ts"

// FilePath returns the default config file path relative to the working
// directory (./.tscbuild.yaml).
func FilePath() string {
	return branding.ConfigFile()
}

// Load reads configuration from path and the environment. An empty path
// means FilePath(), which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = FilePath()
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("enabled", true)
	v.SetDefault("tsc", plugin.DefaultCompilerArgs)
	v.SetDefault("entryPoints", []string{DefaultEntryPoint})
	v.SetDefault("outdir", DefaultOutdir)
	v.SetDefault("bundle", true)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("platform", DefaultPlatform)
	v.SetDefault("sourcemap", DefaultSourcemap)
}

// AdapterOptions returns the adapter configuration carried by c.
func (c *Config) AdapterOptions() plugin.Options {
	return plugin.Options{
		Enabled:      c.Enabled,
		CompilerArgs: append([]string(nil), c.Tsc...),
	}
}

// Package config loads the project configuration (.tscbuild.yaml plus
// TSCBUILD_* environment variables) that the CLI turns into adapter options
// and esbuild build options, and validates config files against an embedded
// JSON schema.
package config

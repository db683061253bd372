// Package cli defines the Cobra command tree for the tscbuild CLI. Each file
// registers one top-level command with the root command. Commands delegate to
// internal packages for the build itself and only handle flag parsing and
// output formatting.
package cli

// Package bundler drives an esbuild build with the tsc adapter installed as
// a plugin, translating project configuration into esbuild options.
package bundler

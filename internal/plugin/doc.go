// Package plugin implements the tsc build adapter. When a build starts it runs
// the TypeScript compiler once; afterwards, for every .ts/.tsx file the host
// build tool loads, it substitutes the file tsc already emitted under dist/
// (plus its adjacent source map) instead of letting the host compile the
// original source. ESBuild exposes the adapter as an esbuild plugin.
package plugin

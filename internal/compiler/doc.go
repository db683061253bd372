// Package compiler runs the external TypeScript compiler (tsc) as a child
// process. The Runner interface lets callers substitute a fake process in
// tests; Exec is the real implementation backed by os/exec.
package compiler

//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths for an isolated project and a fake tsc on PATH.
type testEnv struct {
	ProjectDir string // Project root; also the working directory.
	BinDir     string // Directory holding the fake tsc, prepended to PATH.
}

// setupTestEnv creates an isolated project directory, makes it the working
// directory and puts a fake tsc first on PATH. The fake runs script as a
// POSIX shell body.
func setupTestEnv(t *testing.T, script string) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tsc is a POSIX shell script")
	}

	env := &testEnv{
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
	}

	tscPath := filepath.Join(env.BinDir, "tsc")
	if err := os.WriteFile(tscPath, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatalf("writing fake tsc: %v", err)
	}
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Chdir(env.ProjectDir)

	writeFile(t, filepath.Join(env.ProjectDir, "src", "index.ts"),
		"import { greet } from \"./greet\";\nexport const message: string = greet(\"original\");\n")
	writeFile(t, filepath.Join(env.ProjectDir, "src", "greet.ts"),
		"export function greet(who: string): string { return \"hello \" + who; }\n")

	return env
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertFileNotContains fails if the file contains substr.
func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("file %s unexpectedly contains %q.\nContents:\n%s", path, substr, string(data))
	}
}

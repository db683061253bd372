package plugin

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Result is compiled output substituted for a source file.
type Result struct {
	Content string
	// Map is the adjacent source map, or empty when none was found.
	Map string
}

// OnTransform returns the compiled counterpart of the source file at
// filePath, or nil when the adapter declines to handle it. The original
// content is not consulted. A missing compiled file or map is expected and
// never an error.
func (a *Adapter) OnTransform(content, filePath string) *Result {
	if !a.opts.Enabled || !HasTSExtension(filePath) {
		return nil
	}

	outPath := OutputPath(filePath)

	code := a.maybeReadFile(outPath)
	if code == "" {
		a.logger.Debug("could not find compiled output", zap.String("path", relativeToWorkDir(outPath)))
		return nil
	}

	return &Result{
		Content: code,
		Map:     a.maybeReadFile(outPath + ".map"),
	}
}

// maybeReadFile returns the file's text, or "" on any read failure.
func (a *Adapter) maybeReadFile(path string) string {
	data, err := a.readFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// relativeToWorkDir renders path as "./<relative path>" from the current
// directory, falling back to path unchanged.
func relativeToWorkDir(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil {
		return path
	}
	return "./" + filepath.ToSlash(rel)
}

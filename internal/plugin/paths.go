package plugin

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	tsExtension = regexp.MustCompile(`\.ts(x?)$`)
	srcSegment  = regexp.MustCompile(`(^|/)src(/|\\)`)
)

// HasTSExtension reports whether path ends in exactly ".ts" or ".tsx".
// A bare dotfile such as ".ts" has no extension.
func HasTSExtension(path string) bool {
	ext := extname(path)
	return ext == ".ts" || ext == ".tsx"
}

// ConvertToJSFileExtension rewrites a trailing ".ts" to ".js" and ".tsx" to ".jsx".
func ConvertToJSFileExtension(path string) string {
	return tsExtension.ReplaceAllString(path, ".js$1")
}

// RewriteSrcToOutDir replaces the first "src" path segment with "dist".
// Later "src" segments are left alone, as are names that merely contain "src".
func RewriteSrcToOutDir(path string) string {
	m := srcSegment.FindStringSubmatchIndex(path)
	if m == nil {
		return path
	}
	// m[2:4] is the leading separator group, m[4:6] the trailing one.
	return path[:m[3]] + "dist" + path[m[4]:]
}

// OutputPath returns where tsc is expected to have written the compiled form
// of the source file at path.
func OutputPath(path string) string {
	return RewriteSrcToOutDir(ConvertToJSFileExtension(path))
}

// extname mirrors the usual "extension of the last element" rule where a
// leading dot does not start an extension.
func extname(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i:]
}

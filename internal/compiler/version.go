package compiler

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinBuildModeVersion is the constraint a compiler must satisfy to support
// project build mode ("tsc -b").
const MinBuildModeVersion = ">= 3.0.0"

var versionLine = regexp.MustCompile(`Version\s+(\S+)`)

// Version runs "tsc --version" through r and returns the reported version,
// e.g. "5.4.5".
func Version(ctx context.Context, r Runner) (string, error) {
	out, err := r.Run(ctx, []string{"--version"})
	if err != nil {
		return "", err
	}
	if out.ExitCode != 0 {
		return "", fmt.Errorf("tsc --version exited with code %d", out.ExitCode)
	}
	return ParseVersion(out.Stdout)
}

// ParseVersion extracts the version number from tsc's "--version" output.
func ParseVersion(output string) (string, error) {
	m := versionLine.FindStringSubmatch(output)
	if m == nil {
		return "", fmt.Errorf("unrecognized version output %q", strings.TrimSpace(output))
	}
	return m[1], nil
}

// CheckVersion reports whether version satisfies constraint.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CheckVersion(version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}

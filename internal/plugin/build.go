package plugin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// BuildError reports that the compiler exited with a non-zero code.
type BuildError struct {
	ExitCode int
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("tsc build exited with code %d", e.ExitCode)
}

// OnBuildStart runs the compiler once and blocks until it exits. Captured
// stdout and then stderr are written to the output writer, each at most once,
// before the result is returned. A non-zero exit yields a *BuildError.
func (a *Adapter) OnBuildStart(ctx context.Context) error {
	if !a.opts.Enabled {
		return nil
	}

	args := a.CompilerArgs()
	fmt.Fprintln(a.out, strings.Join(append([]string{a.Name() + ": tsc"}, args...), " "))
	a.logger.Debug("starting compiler", zap.Strings("args", args))

	out, err := a.runner.Run(ctx, args)
	if out != nil {
		writeCaptured(a.out, out.Stdout)
		writeCaptured(a.out, out.Stderr)
	}
	if err != nil {
		return fmt.Errorf("running tsc: %w", err)
	}
	if out == nil {
		return errors.New("running tsc: runner returned no output")
	}

	if out.ExitCode != 0 {
		return &BuildError{ExitCode: out.ExitCode}
	}
	return nil
}

// writeCaptured writes a captured stream as a single block.
func writeCaptured(w io.Writer, s string) {
	if s == "" {
		return
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	io.WriteString(w, s)
}

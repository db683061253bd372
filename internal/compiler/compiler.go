package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// DefaultExecutable is the compiler binary looked up on PATH when Exec.Path is empty.
const DefaultExecutable = "tsc"

// Runner defines the interface for invoking the compiler once.
type Runner interface {
	// Run executes the compiler with args verbatim and waits for it to exit.
	// A non-zero exit is reported through Output.ExitCode, not as an error.
	Run(ctx context.Context, args []string) (*Output, error)
}

// Output captures the result of a compiler execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Exec runs the compiler as a real child process.
type Exec struct {
	// Path is the executable name or path. Defaults to DefaultExecutable.
	Path string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds extra KEY=VALUE entries appended to the inherited environment.
	Env []string
}

// Run starts the compiler and blocks until it exits. Stdout and stderr are
// buffered separately in arrival order and returned in full after exit; nothing
// is streamed. No timeout is applied beyond ctx.
func (e *Exec) Run(ctx context.Context, args []string) (*Output, error) {
	name := e.executable()

	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = e.Dir
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return output, fmt.Errorf("running %s: %w", name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running %s: %w", name, err)
	}

	return output, nil
}

func (e *Exec) executable() string {
	if e.Path == "" {
		return DefaultExecutable
	}
	return e.Path
}

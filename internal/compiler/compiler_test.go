package compiler

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// helperExec returns an Exec that re-invokes the test binary as a fake
// compiler. The fake is driven by the arguments after "--".
func helperExec() *Exec {
	return &Exec{
		Path: os.Args[0],
		Env:  []string{"GO_WANT_HELPER_PROCESS=1"},
	}
}

func helperArgs(args ...string) []string {
	return append([]string{"-test.run=TestHelperProcess", "--"}, args...)
}

// TestHelperProcess is not a real test. It acts as the fake compiler:
//
//	<stdout> <stderr> <exit code>
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 {
		if args[0] == "--" {
			args = args[1:]
			break
		}
		args = args[1:]
	}
	if len(args) != 3 {
		fmt.Fprintf(os.Stderr, "helper: want 3 args, got %d\n", len(args))
		os.Exit(99)
	}
	fmt.Fprint(os.Stdout, args[0])
	fmt.Fprint(os.Stderr, args[1])
	code, _ := strconv.Atoi(args[2])
	os.Exit(code)
}

func TestExec_Success(t *testing.T) {
	out, err := helperExec().Run(context.Background(), helperArgs("stdout-line\n", "", "0"))
	require.NoError(t, err)
	assert.Equal(t, 0, out.ExitCode)
	assert.Equal(t, "stdout-line\n", out.Stdout)
	assert.Empty(t, out.Stderr)
}

func TestExec_NonZeroExitIsNotAnError(t *testing.T) {
	out, err := helperExec().Run(context.Background(), helperArgs("", "error TS2322\n", "2"))
	require.NoError(t, err, "non-zero exit should be reported in Output")
	assert.Equal(t, 2, out.ExitCode)
	assert.Equal(t, "error TS2322\n", out.Stderr)
}

func TestExec_SeparatesStreams(t *testing.T) {
	out, err := helperExec().Run(context.Background(), helperArgs("a", "b", "1"))
	require.NoError(t, err)
	assert.Equal(t, "a", out.Stdout)
	assert.Equal(t, "b", out.Stderr)
	assert.Equal(t, 1, out.ExitCode)
}

func TestExec_MissingExecutable(t *testing.T) {
	e := &Exec{Path: "tscbuild-definitely-not-installed"}
	_, err := e.Run(context.Background(), []string{"-b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locating tscbuild-definitely-not-installed")
}

func TestExec_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := helperExec().Run(ctx, helperArgs("", "", "0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExec_DefaultExecutable(t *testing.T) {
	assert.Equal(t, "tsc", (&Exec{}).executable())
	assert.Equal(t, "/opt/tsc", (&Exec{Path: "/opt/tsc"}).executable())
}

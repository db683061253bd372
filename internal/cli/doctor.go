package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/tscbuild/tscbuild/internal/compiler"
	"github.com/tscbuild/tscbuild/internal/config"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the compiler and project configuration",
	Long:  `Verify that tsc is installed, supports build mode, and that the project config file is valid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := false

		if !runCompilerCheck(cmd.Context(), out, &compiler.Exec{}) {
			failed = true
		}
		if !runConfigCheck(out, config.FilePath()) {
			failed = true
		}

		if failed {
			return errors.New("doctor found problems")
		}
		return nil
	},
}

func runCompilerCheck(ctx context.Context, w io.Writer, r compiler.Runner) bool {
	fmt.Fprintln(w, "Compiler check:")

	path, err := exec.LookPath(compiler.DefaultExecutable)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", compiler.DefaultExecutable)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", compiler.DefaultExecutable, path)

	return checkCompilerVersion(ctx, w, r)
}

func checkCompilerVersion(ctx context.Context, w io.Writer, r compiler.Runner) bool {
	version, err := compiler.Version(ctx, r)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] Cannot determine version: %v\n", err)
		return false
	}

	ok, err := compiler.CheckVersion(version, compiler.MinBuildModeVersion)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] Cannot compare version %s: %v\n", version, err)
		return true
	}
	if !ok {
		fmt.Fprintf(w, "  [FAIL] tsc %s does not satisfy %s (needed for -b)\n", version, compiler.MinBuildModeVersion)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] tsc %s\n", version)
	return true
}

func runConfigCheck(w io.Writer, path string) bool {
	fmt.Fprintf(w, "Config check: %s\n", path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "  [INFO] Not present, using defaults\n")
		return true
	}
	return reportValidation(w, path) == nil
}

// reportValidation validates the config file at path and prints the outcome.
func reportValidation(w io.Writer, path string) error {
	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("config validation failed: %w", err)
	}

	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] Valid config\n")
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %s:\n", result.Summary())
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("config %s has %s", path, result.Summary())
}

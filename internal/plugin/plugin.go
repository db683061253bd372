package plugin

import (
	"io"
	"os"

	"github.com/tscbuild/tscbuild/internal/branding"
	"github.com/tscbuild/tscbuild/internal/compiler"
	"go.uber.org/zap"
)

// DefaultCompilerArgs requests a standard project build.
var DefaultCompilerArgs = []string{"-b"}

// Options configures an Adapter. It is fixed for the adapter's lifetime.
type Options struct {
	// Enabled turns both hooks on. A disabled adapter still reports its name
	// but never spawns the compiler and never substitutes output.
	Enabled bool
	// CompilerArgs is passed verbatim to tsc. Nil means DefaultCompilerArgs.
	CompilerArgs []string
}

// DefaultOptions returns an enabled configuration running "tsc -b".
func DefaultOptions() Options {
	return Options{
		Enabled:      true,
		CompilerArgs: append([]string(nil), DefaultCompilerArgs...),
	}
}

// Adapter is the tsc build adapter. All of its state is immutable after New,
// so its hooks are safe to call from multiple goroutines.
type Adapter struct {
	opts     Options
	runner   compiler.Runner
	out      io.Writer
	logger   *zap.Logger
	readFile func(string) ([]byte, error)
}

// Option customizes the collaborators of an Adapter.
type Option func(*Adapter)

// WithRunner sets the process runner used by OnBuildStart.
func WithRunner(r compiler.Runner) Option {
	return func(a *Adapter) { a.runner = r }
}

// WithOutput sets the writer that receives the command echo and the
// compiler's captured output. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *Adapter) { a.out = w }
}

// WithLogger sets the logger used for diagnostics. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// New returns an adapter for opts.
func New(opts Options, options ...Option) *Adapter {
	if opts.CompilerArgs == nil {
		opts.CompilerArgs = append([]string(nil), DefaultCompilerArgs...)
	}
	a := &Adapter{
		opts:     opts,
		runner:   &compiler.Exec{},
		out:      os.Stdout,
		logger:   zap.NewNop(),
		readFile: os.ReadFile,
	}
	for _, o := range options {
		o(a)
	}
	a.logger = a.logger.Named(a.Name())
	return a
}

// Name returns the name the adapter registers under.
func (a *Adapter) Name() string {
	return branding.PluginName()
}

// Enabled reports whether the hooks are active.
func (a *Adapter) Enabled() bool {
	return a.opts.Enabled
}

// CompilerArgs returns a copy of the arguments passed to tsc.
func (a *Adapter) CompilerArgs() []string {
	return append([]string(nil), a.opts.CompilerArgs...)
}

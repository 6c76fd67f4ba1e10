package lang

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/brief/log"
)

// DefaultMaxDepth is the default limit on nested function calls.
// Users may modify this before creating an interpreter to change the default.
var DefaultMaxDepth = 1000

// Interpreter executes programs against one shared [Env].
//
// An Interpreter may execute any number of programs; they all observe and
// mutate the same environment.
type Interpreter struct {
	env      *Env
	out      io.Writer
	logger   log.Logger
	maxDepth int
	globals  map[string]Value
	depth    int
}

// Option configures an [Interpreter].
type Option func(*Interpreter)

// WithOutput sets the writer that print statements write to.
// A nil writer discards output. The default is [os.Stdout].
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		if w == nil {
			w = io.Discard
		}

		in.out = w
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

// WithMaxDepth sets the maximum nesting of function calls.
// A non-positive depth disables the limit.
func WithMaxDepth(depth int) Option {
	return func(in *Interpreter) {
		in.maxDepth = depth
	}
}

// WithGlobals declares the given bindings before anything executes.
func WithGlobals(globals map[string]Value) Option {
	return func(in *Interpreter) {
		if in.globals == nil {
			in.globals = make(map[string]Value, len(globals))
		}

		for name, v := range globals {
			in.globals[name] = v
		}
	}
}

// New returns an interpreter with a fresh environment.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		env:      NewEnv(),
		out:      os.Stdout,
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(in)
	}

	in.Reset()

	return in
}

// Env returns the interpreter's environment.
func (in *Interpreter) Env() *Env { return in.env }

// Reset discards every binding and re-declares the configured globals.
func (in *Interpreter) Reset() {
	in.env = NewEnv()
	in.depth = 0

	for _, name := range sortedKeys(in.globals) {
		in.env.Declare(name, in.globals[name])
	}
}

// Execute runs prog to completion or to the first fatal error.
//
// The context is consulted before each loop iteration and function call;
// cancelling it aborts execution with the context's error.
func (in *Interpreter) Execute(ctx context.Context, prog *Program) error {
	if prog == nil {
		return nil
	}

	in.logger.TraceContext(ctx, "execute start",
		slog.Int("statement_count", len(prog.Statements)),
		slog.Int("binding_count", in.env.Len()),
	)

	in.depth = 0

	err := in.execBlock(ctx, prog.Statements)
	if err != nil {
		in.logger.DebugContext(ctx, "execute failed", slog.Any("error", err))

		return err
	}

	in.logger.TraceContext(ctx, "execute complete",
		slog.Int("binding_count", in.env.Len()),
	)

	return nil
}

// Run tokenizes, parses and executes source with a fresh interpreter.
func Run(ctx context.Context, source string, opts ...Option) error {
	prog, err := ParseString(source)
	if err != nil {
		return err
	}

	return New(opts...).Execute(ctx, prog)
}

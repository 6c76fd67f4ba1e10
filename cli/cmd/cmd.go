package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/brief/lang"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	globalsKey struct{}
	includeKey struct{}
	streamsKey struct{}

	streams struct {
		in  io.Reader
		out io.Writer
	}
)

// WithGlobals returns a new context.Context carrying host bindings that every
// interpreter created by a command declares before running.
func WithGlobals(ctx context.Context, globals map[string]lang.Value) context.Context {
	return context.WithValue(ctx, globalsKey{}, globals)
}

func globalsFrom(ctx context.Context) map[string]lang.Value {
	g, _ := ctx.Value(globalsKey{}).(map[string]lang.Value)

	return g
}

// WithIncludes returns a new context.Context carrying the directories
// searched for scripts not found as given. See [SearchPath].
func WithIncludes(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, includeKey{}, dirs)
}

func includesFrom(ctx context.Context) []string {
	dirs, _ := ctx.Value(includeKey{}).([]string)

	return dirs
}

// WithStreams returns a new context.Context whose commands read "-" from in
// and write script output to out. Nil streams leave the process defaults.
func WithStreams(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	return context.WithValue(ctx, streamsKey{}, streams{in: in, out: out})
}

func streamsFrom(ctx context.Context) (io.Reader, io.Writer) {
	s, _ := ctx.Value(streamsKey{}).(streams)

	if s.in == nil {
		s.in = os.Stdin
	}

	if s.out == nil {
		s.out = os.Stdout
	}

	return s.in, s.out
}

// stdinSource is the special script name for reading from stdin.
const stdinSource = "-"

// openScript opens the named script. A name that does not exist as given is
// looked up, unless absolute, relative to each include directory in order.
func openScript(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if name == stdinSource {
		in, _ := streamsFrom(ctx)

		return io.NopCloser(in), "<stdin>", nil
	}

	candidates := []string{name}

	if !filepath.IsAbs(name) {
		for _, dir := range includesFrom(ctx) {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, path, ErrReadScript.Wrap(err).
				With(slog.String("script", path))
		}

		return f, path, nil
	}

	return nil, name, ErrScriptNotFound.
		With(
			slog.String("script", name),
			slog.Any("include", includesFrom(ctx)),
		)
}

// parseScript opens and parses the named script through the parse cache.
func parseScript(
	ctx context.Context,
	name string,
	opts ...lang.Option,
) (*lang.Program, string, error) {
	r, path, err := openScript(ctx, name)
	if err != nil {
		return nil, path, err
	}
	defer r.Close()

	prog, err := lang.ParseReader(ctx, r, opts...)
	if err != nil {
		return nil, path, lang.WrapError(err).
			With(slog.String("script", path))
	}

	return prog, path, nil
}

// readScript returns the full text of the named script.
func readScript(ctx context.Context, name string) (string, string, error) {
	r, path, err := openScript(ctx, name)
	if err != nil {
		return "", path, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", path, ErrReadScript.Wrap(err).
			With(slog.String("script", path))
	}

	return string(data), path, nil
}

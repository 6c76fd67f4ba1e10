package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/brief/lang"
	"github.com/ardnew/brief/log"
)

// Run parses and executes a script.
type Run struct {
	MaxDepth int `default:"1000" help:"Maximum call depth before a stack overflow" name:"max-depth"`

	Script string `arg:"" help:"Script file or '-' for stdin." name:"script"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger := log.With(slog.String("command", "run"))

	prog, path, err := parseScript(ctx, r.Script, lang.WithLogger(logger))
	if err != nil {
		return err
	}

	_, out := streamsFrom(ctx)

	in := lang.New(
		lang.WithOutput(out),
		lang.WithLogger(logger.With(slog.String("script", path))),
		lang.WithGlobals(globalsFrom(ctx)),
		lang.WithMaxDepth(r.MaxDepth),
	)

	if err := in.Execute(ctx, prog); err != nil {
		return lang.WrapError(err).
			With(slog.String("script", path))
	}

	logger.DebugContext(ctx, "script finished",
		slog.String("script", path),
		slog.Int("statements", len(prog.Statements)),
	)

	return nil
}

// Tokens prints the token stream of a script, one token per line.
type Tokens struct {
	Script string `arg:"" help:"Script file or '-' for stdin." name:"script"`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) error {
	source, path, err := readScript(ctx, t.Script)
	if err != nil {
		return err
	}

	tokens, err := lang.Tokenize(source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("script", path))
	}

	_, out := streamsFrom(ctx)

	for _, tok := range tokens {
		if _, err := io.WriteString(out, tok.String()+"\n"); err != nil {
			return err
		}
	}

	return nil
}

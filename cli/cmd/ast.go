package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/brief/lang"
)

// AST exports the syntax tree of a script.
type AST struct {
	Format string `default:"json" enum:"json,yaml,source" help:"Output format (${enum})" short:"f"`
	Indent int    `default:"2"                            help:"Indent width; 0 selects compact output" short:"i"`

	Script string `arg:"" help:"Script file or '-' for stdin." name:"script"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	prog, path, err := parseScript(ctx, a.Script)
	if err != nil {
		return err
	}

	_, out := streamsFrom(ctx)

	var data []byte

	switch a.Format {
	case "source":
		return lang.Format(out, prog, a.Indent)

	case "yaml":
		data, err = lang.MarshalYAML(ctx, prog, a.Indent)

	default:
		data, err = lang.MarshalJSON(prog, a.Indent)
		data = append(data, '\n')
	}

	if err != nil {
		return ErrMarshal.Wrap(err).
			With(
				slog.String("script", path),
				slog.String("format", a.Format),
			)
	}

	_, err = out.Write(data)

	return err
}

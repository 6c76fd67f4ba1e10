package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/brief/cli/cmd/repl"
	"github.com/ardnew/brief/lang"
	"github.com/ardnew/brief/log"
)

// Repl starts an interactive session.
type Repl struct {
	MaxDepth int `default:"1000" help:"Maximum call depth before a stack overflow" name:"max-depth"`

	Script string `arg:"" help:"Script to execute before the session starts." name:"script" optional:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	cacheDir, ok := ktx.Model.Vars()[CacheIdentifier]
	if !ok {
		panic("internal error: cache namespace undefined")
	}

	logger := log.With(slog.String("command", "repl"))

	var preload io.Reader

	if r.Script != "" {
		rc, path, err := openScript(ctx, r.Script)
		if err != nil {
			return err
		}
		defer rc.Close()

		preload = rc

		logger = logger.With(slog.String("script", path))
	}

	return repl.Run(ctx, preload, cacheDir, logger,
		lang.WithGlobals(globalsFrom(ctx)),
		lang.WithMaxDepth(r.MaxDepth),
	)
}

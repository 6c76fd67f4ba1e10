package cmd

import (
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/ardnew/brief/lang"
)

// Defines evaluates a list of NAME=EXPR definitions into host bindings.
//
// Each EXPR is an expr-lang expression evaluated with every previously
// defined name in scope, so later definitions may refer to earlier ones:
//
//	-D width=80 -D half='width / 2' -D title='"report " + string(half)'
//
// The result must convert to a runtime value with [lang.ValueOf].
func Defines(defs []string) (map[string]lang.Value, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	env := make(map[string]any, len(defs))
	globals := make(map[string]lang.Value, len(defs))

	for _, def := range defs {
		name, text, ok := strings.Cut(def, "=")
		name = strings.TrimSpace(name)

		if !ok || !isIdentifier(name) {
			return nil, ErrDefine.
				Wrapf("expected NAME=EXPR").
				With(slog.String("define", def))
		}

		result, err := expr.Eval(text, env)
		if err != nil {
			return nil, ErrDefine.Wrap(err).
				With(slog.String("name", name))
		}

		value, err := lang.ValueOf(result)
		if err != nil {
			return nil, ErrDefine.Wrap(err).
				With(slog.String("name", name))
		}

		env[name] = result
		globals[name] = value
	}

	return globals, nil
}

// isIdentifier reports whether name lexes as exactly one identifier.
func isIdentifier(name string) bool {
	tokens, err := lang.Tokenize(name)

	return err == nil &&
		len(tokens) == 2 &&
		tokens[0].Kind == lang.KindIdentifier &&
		tokens[1].Kind == lang.KindEOF
}

// Package cmd implements the brief subcommands.
//
//   - [Run] parses and executes a script file.
//   - [Tokens] prints the token stream of a script.
//   - [AST] exports the syntax tree as JSON, YAML, or canonical source.
//   - [Init] writes a configuration file holding the current flag values.
//   - [Repl] starts the interactive session.
//
// Commands receive shared state (include directories, host globals, standard
// streams) through the [context.Context] bound by the cli package.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)

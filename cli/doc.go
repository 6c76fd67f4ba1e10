// Package cli contains the command line interface for brief.
//
// # Usage
//
//	brief [flags] [run] <script>      execute a script ('-' reads stdin)
//	brief tokens <script>             print the token stream
//	brief ast --format=yaml <script>  export the syntax tree
//	brief repl [script]               interactive session
//	brief init                        write the configuration file
//
// # Globals and Includes
//
// -D NAME=EXPR declares a global before the script runs. EXPR is an
// expr-lang expression and may refer to globals defined earlier on the
// command line:
//
//	brief -D width=80 -D half='width / 2' layout.brief
//
// -I DIR adds a directory searched for relative script names. Directories
// listed in $BRIEF_PATH are searched after those given with -I.
//
// # Configuration File
//
// Flag defaults are read from config.yaml in the user configuration
// directory (see [pkg.ConfigDir]), a flat mapping from flag name to value.
// The init command writes one from the current flag values. Command-line
// flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (Kitchen, RFC3339, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output on a terminal
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o brief .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/brief/pprof)
package cli

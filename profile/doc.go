// Package profile provides optional runtime profiling for the brief
// interpreter.
//
// Profiling is backed by [github.com/pkg/profile] and compiled in only when
// building with the "pprof" tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Config.Start] always returns a no-op.
//
// # Modes
//
// With the tag, the supported modes are allocs, block, clock, cpu, goroutine,
// heap, mem, mutex, thread, and trace. Profiles are written to the configured
// directory with names matching the mode (e.g., cpu.pprof):
//
//	ctrl := profile.Config(nil).With(
//		profile.WithMode("cpu"),
//		profile.WithPath("/tmp/profiles"),
//	).Start()
//	defer ctrl.Stop()
//
// The command line exposes the same settings:
//
//	brief --pprof-mode cpu --pprof-dir ./profiles run fib.bf
//
// and the result is analyzed with the go tool:
//
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// The pprof build also imports [net/http/pprof], registering its handlers on
// [net/http.DefaultServeMux] for programs that serve it.
package profile

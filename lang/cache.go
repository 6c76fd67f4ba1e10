package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// ErrReadInput is returned when script source cannot be read.
var ErrReadInput = NewError("read input")

// maxCacheEntries bounds the number of distinct sources held by the parse
// cache. Storing one more drops every entry first.
const maxCacheEntries = 1024

var (
	// programCache stores parse results keyed by the xxh3 hash of the
	// source. A parsed [Program] is never mutated by execution, so one tree
	// may be shared by any number of interpreters.
	programCache sync.Map

	// cacheEntries approximates the number of entries in programCache.
	cacheEntries atomic.Int64
)

// parsed holds the one-time parse result for a source.
type parsed struct {
	once   sync.Once
	source string
	prog   *Program
	err    error
}

func cacheKey(source string) (uint64, string) {
	hash := xxh3.HashString(source)

	return hash, strconv.FormatUint(hash, 36)
}

// ParseReader reads all of r and parses it. Results are cached by source
// content, so repeated reads of an unchanged script parse only once.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Program, error) {
	// Pre-fetch while the previous chunk is being copied.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	in := &Interpreter{}
	for _, opt := range opts {
		opt(in)
	}

	in.logger.TraceContext(ctx, "read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	return parseCached(ctx, in, string(data))
}

// ParseCached parses source, reusing the result of any earlier parse of
// identical text.
func ParseCached(ctx context.Context, source string, opts ...Option) (*Program, error) {
	in := &Interpreter{}
	for _, opt := range opts {
		opt(in)
	}

	return parseCached(ctx, in, source)
}

func parseCached(ctx context.Context, in *Interpreter, source string) (*Program, error) {
	hash, key := cacheKey(source)

	value, hit := programCache.Load(key)
	if !hit {
		if cacheEntries.Load() >= maxCacheEntries {
			in.logger.TraceContext(ctx, "cache full",
				slog.Int("max_entries", maxCacheEntries),
			)

			ClearCache()
		}

		value, hit = programCache.LoadOrStore(key, &parsed{source: source})
		if !hit {
			cacheEntries.Add(1)
		}
	}

	entry := value.(*parsed)

	in.logger.TraceContext(ctx, "cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit),
	)

	// Distinct sources with equal hashes are parsed without caching.
	if entry.source != source {
		in.logger.TraceContext(ctx, "cache collision",
			slog.String("source_hash", strconv.FormatUint(hash, 16)),
		)

		return parseSource(source)
	}

	entry.once.Do(func() {
		entry.prog, entry.err = parseSource(source)
	})

	return entry.prog, entry.err
}

func parseSource(source string) (*Program, error) {
	prog, err := ParseString(source)
	if err != nil {
		return nil, WrapError(err).With(
			slog.Int("source_length", len(source)),
		)
	}

	return prog, nil
}

// ClearCache removes all cached parse results.
func ClearCache() {
	programCache.Range(func(key, _ any) bool {
		if _, ok := programCache.LoadAndDelete(key); ok {
			cacheEntries.Add(-1)
		}

		return true
	})
}

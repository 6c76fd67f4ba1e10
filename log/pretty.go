package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used to colorize log output.
// Styles are bound to a renderer for the handler's writer, so output to
// anything other than a color terminal is left unstyled.
type palette struct {
	key     lipgloss.Style
	str     lipgloss.Style
	num     lipgloss.Style
	boolean lipgloss.Style
	stamp   lipgloss.Style
	source  lipgloss.Style
	message lipgloss.Style

	trace lipgloss.Style
	debug lipgloss.Style
	info  lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
}

func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		key:     r.NewStyle().Foreground(lipgloss.Color("8")),
		str:     r.NewStyle().Foreground(lipgloss.Color("6")).TabWidth(lipgloss.NoTabConversion),
		num:     r.NewStyle().Foreground(lipgloss.Color("3")),
		boolean: r.NewStyle().Foreground(lipgloss.Color("5")),
		stamp:   r.NewStyle().Foreground(lipgloss.Color("8")),
		source:  r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		message: r.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion),

		trace: r.NewStyle().Foreground(lipgloss.Color("13")),
		debug: r.NewStyle().Foreground(lipgloss.Color("4")),
		info:  r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		err:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// header holds the built-in fields of a record.
type header struct {
	time    string
	level   slog.Level
	source  string
	message string
}

// prettyHandler implements a colorized slog.Handler producing either
// single-line text or single-line JSON.
type prettyHandler struct {
	opts       slog.HandlerOptions
	formatTime FormatTime
	style      palette
	json       bool

	mu *sync.Mutex
	w  io.Writer

	prefix string
	attrs  []slog.Attr
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
	asJSON bool,
) *prettyHandler {
	return &prettyHandler{
		opts:       *opts,
		formatTime: formatTime,
		style:      makePalette(w),
		json:       asJSON,
		mu:         &sync.Mutex{},
		w:          w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	hd := header{level: r.Level, message: r.Message}

	if !r.Time.IsZero() && h.formatTime != nil {
		hd.time = h.formatTime(r.Time)
	}

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			hd.source = filepath.Base(src.File) + ":" + strconv.Itoa(src.Line)
		}
	}

	attrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+r.NumAttrs())
	copy(attrs, h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		attrs = flatten(attrs, h.prefix, a)

		return true
	})

	buf := new(bytes.Buffer)

	if h.json {
		h.writeJSON(buf, hd, attrs)
	} else {
		h.writeText(buf, hd, attrs)
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := *h
	c.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(c.attrs, h.attrs)

	for _, a := range attrs {
		c.attrs = flatten(c.attrs, h.prefix, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

// flatten appends a to dst, expanding group values into dotted keys.
func flatten(dst []slog.Attr, prefix string, a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return dst
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			dst = flatten(dst, prefix, g)
		}

		return dst
	}

	a.Key = prefix + a.Key

	return append(dst, a)
}

func levelLabel(l slog.Level) string {
	return strings.ToUpper(Level(l).Name())
}

func (h *prettyHandler) writeText(buf *bytes.Buffer, hd header, attrs []slog.Attr) {
	parts := make([]string, 0, 4+len(attrs))

	if hd.time != "" {
		parts = append(parts, h.style.stamp.Render(hd.time))
	}

	parts = append(parts, h.style.level(hd.level).Render(fmt.Sprintf("%-5s", levelLabel(hd.level))))

	if hd.source != "" {
		parts = append(parts, h.style.source.Render(hd.source))
	}

	parts = append(parts, h.style.message.Render(hd.message))

	for _, a := range attrs {
		parts = append(parts, h.style.key.Render(a.Key)+"="+h.textValue(a.Value))
	}

	buf.WriteString(strings.Join(parts, " "))
}

func (h *prettyHandler) textValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			s = strconv.Quote(s)
		}

		return h.style.str.Render(s)

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return h.style.num.Render(v.String())

	case slog.KindBool:
		return h.style.boolean.Render(v.String())

	case slog.KindTime:
		return h.style.stamp.Render(v.Time().Format(time.RFC3339))

	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return h.style.str.Render(strconv.Quote(err.Error()))
		}
	}

	return h.style.str.Render(v.String())
}

func (h *prettyHandler) writeJSON(buf *bytes.Buffer, hd header, attrs []slog.Attr) {
	buf.WriteByte('{')

	first := true
	field := func(key, value string) {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		buf.WriteString(h.style.key.Render(quoteJSON(key)))
		buf.WriteByte(':')
		buf.WriteString(value)
	}

	if hd.time != "" {
		field(slog.TimeKey, h.style.stamp.Render(quoteJSON(hd.time)))
	}

	field(slog.LevelKey, h.style.level(hd.level).Render(quoteJSON(levelLabel(hd.level))))

	if hd.source != "" {
		field(slog.SourceKey, h.style.source.Render(quoteJSON(hd.source)))
	}

	field(slog.MessageKey, h.style.message.Render(quoteJSON(hd.message)))

	for _, a := range attrs {
		field(a.Key, h.jsonValue(a.Value))
	}

	buf.WriteByte('}')
}

func (h *prettyHandler) jsonValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.style.str.Render(quoteJSON(v.String()))

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return h.style.num.Render(v.String())

	case slog.KindBool:
		return h.style.boolean.Render(v.String())

	case slog.KindDuration:
		return h.style.num.Render(strconv.FormatInt(int64(v.Duration()), 10))

	case slog.KindTime:
		return h.style.stamp.Render(quoteJSON(v.Time().Format(time.RFC3339Nano)))
	}

	if err, ok := v.Any().(error); ok {
		return h.style.str.Render(quoteJSON(err.Error()))
	}

	b, err := json.Marshal(v.Any())
	if err != nil {
		return h.style.str.Render(quoteJSON(fmt.Sprint(v.Any())))
	}

	return h.style.str.Render(string(b))
}

func quoteJSON(s string) string {
	b, _ := json.Marshal(s)

	return string(b)
}

package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
)

const consoleTimeLayout = "15:04:05"

// consoleOutput is shared by every handler derived through WithAttrs or
// WithGroup so lines from different component loggers never interleave.
type consoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// consoleHandler writes one human-oriented line per record:
//
//	15:04:05 WRN profile/dualsense: field not applied field=LEDBarMode value=Blink
//
// The component and family attributes are lifted into the prefix.
type consoleHandler struct {
	out    *consoleOutput
	level  slog.Leveler
	source bool
	color  bool
	attrs  []slog.Attr
	group  string
}

func newConsoleHandler(w io.Writer, level slog.Leveler, source, color bool) *consoleHandler {
	return &consoleHandler{out: &consoleOutput{w: w}, level: level, source: source, color: color}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]slog.Attr, 0, len(h.attrs)+record.NumAttrs())
	fields = append(fields, h.attrs...)
	record.Attrs(func(attr slog.Attr) bool {
		fields = appendQualified(fields, h.group, attr)
		return true
	})

	var component, family string
	rest := fields[:0:0]
	for _, attr := range fields {
		switch {
		case attr.Key == FieldComponent && component == "":
			component = attr.Value.String()
		case attr.Key == FieldFamily && family == "":
			family = attr.Value.String()
		default:
			rest = append(rest, attr)
		}
	}

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var b strings.Builder
	b.WriteString(ts.Format(consoleTimeLayout))
	b.WriteByte(' ')
	b.WriteString(h.levelTag(record.Level))
	b.WriteByte(' ')
	if prefix := joinNonEmpty("/", component, family); prefix != "" {
		b.WriteString(prefix)
		b.WriteString(": ")
	}
	msg := strings.TrimSpace(record.Message)
	if msg == "" {
		msg = "-"
	}
	b.WriteString(msg)
	for _, attr := range rest {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteByte('=')
		b.WriteString(consoleValue(attr.Value))
	}
	if h.source && record.PC != 0 {
		if src := record.Source(); src != nil {
			fmt.Fprintf(&b, " (%s:%d)", filepath.Base(src.File), src.Line)
		}
	}
	b.WriteByte('\n')

	h.out.mu.Lock()
	defer h.out.mu.Unlock()
	_, err := io.WriteString(h.out.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, attr := range attrs {
		next.attrs = appendQualified(next.attrs, h.group, attr)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = joinNonEmpty(".", h.group, name)
	return &next
}

func (h *consoleHandler) levelTag(level slog.Level) string {
	tag, colors := "DBG", text.Colors{text.FgHiBlack}
	switch {
	case level >= slog.LevelError:
		tag, colors = "ERR", text.Colors{text.FgRed, text.Bold}
	case level >= slog.LevelWarn:
		tag, colors = "WRN", text.Colors{text.FgYellow}
	case level >= slog.LevelInfo:
		tag, colors = "INF", text.Colors{text.FgCyan}
	}
	if !h.color {
		return tag
	}
	return colors.Sprint(tag)
}

// appendQualified flattens attr into dst, prefixing keys with group.
func appendQualified(dst []slog.Attr, group string, attr slog.Attr) []slog.Attr {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	if attr.Value.Kind() == slog.KindGroup {
		inner := joinNonEmpty(".", group, attr.Key)
		for _, child := range attr.Value.Group() {
			dst = appendQualified(dst, inner, child)
		}
		return dst
	}
	attr.Key = joinNonEmpty(".", group, attr.Key)
	return append(dst, attr)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func consoleValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindTime:
		s = v.Time().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

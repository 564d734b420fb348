package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// tracebackKey marks a record attribute rendered as indented lines after the
// log line instead of a key=value field.
const tracebackKey = "traceback"

var levelColors = map[Level]*color.Color{
	DebugLevel:    color.New(color.FgCyan),
	InfoLevel:     color.New(color.FgGreen),
	WarningLevel:  color.New(color.FgYellow),
	ErrorLevel:    color.New(color.FgRed),
	CriticalLevel: color.New(color.FgHiRed, color.Bold),
}

func init() {
	// Colorize is an explicit opt-in, so it wins over fatih/color's tty detection.
	for _, c := range levelColors {
		c.EnableColor()
	}
}

// sink is the single destination shared by a Logger and every handler derived
// from it. Replacing the console writer swaps it; it never adds a second one.
type sink struct {
	mu       sync.Mutex
	console  io.Writer
	file     io.WriteCloser
	colorize bool
	journald bool
}

func (s *sink) write(level Level, plain string) error {
	consoleLine := plain
	if s.colorize {
		if c, ok := levelColors[level]; ok {
			name := level.String()
			consoleLine = c.Sprint(name) + strings.TrimPrefix(plain, name)
		}
	}
	if s.journald {
		consoleLine = prefixLines(consoleLine, syslogPrefixForLevel(level))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	if s.console != nil {
		if _, err := io.WriteString(s.console, consoleLine); err != nil {
			firstErr = err
		}
	}
	if s.file != nil {
		if _, err := io.WriteString(s.file, plain); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *sink) setConsole(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.console = w
}

func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// lineHandler is a slog.Handler writing SEVERITY:MESSAGE:MODULE:FUNCTION:LINE.
// Record levels are the numeric severities of this package, not slog's.
type lineHandler struct {
	sink   *sink
	level  slog.Leveler
	fields string
	group  string
}

var _ slog.Handler = &lineHandler{}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	level := Level(r.Level)

	var fields strings.Builder
	fields.WriteString(h.fields)
	traceback := ""
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tracebackKey && h.group == "" {
			traceback = a.Value.String()
			return true
		}
		appendAttr(&fields, h.group, a)
		return true
	})

	var line strings.Builder
	line.WriteString(level.String())
	line.WriteByte(':')
	line.WriteString(r.Message)
	line.WriteString(fields.String())
	line.WriteByte(':')
	line.WriteString(locationFromPC(r.PC).String())
	line.WriteByte('\n')
	if traceback != "" {
		line.WriteString(indent(traceback))
	}

	return h.sink.write(level, line.String())
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var fields strings.Builder
	fields.WriteString(h.fields)
	for _, a := range attrs {
		appendAttr(&fields, h.group, a)
	}
	clone := *h
	clone.fields = fields.String()
	return &clone
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.group + name + "."
	return &clone
}

// appendAttr writes a " key=value" field, flattening groups with dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s%s=%v", group, a.Key, a.Value.Any())
}

// encodeFields formats key-value pairs as " key=value" strings.
// Pairs with a non-string key and a trailing odd value are dropped.
func encodeFields(keyvals ...any) string {
	if len(keyvals) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", key, keyvals[i+1])
	}
	return b.String()
}

// indent prefixes every line of s with a tab.
func indent(s string) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}
	return "\t" + strings.ReplaceAll(s, "\n", "\n\t") + "\n"
}

// syslogPrefixForLevel maps a severity to the journald priority prefix.
// Unnamed levels take the priority of the closest named level below them.
func syslogPrefixForLevel(level Level) string {
	switch {
	case level >= CriticalLevel:
		return "<2>"
	case level >= ErrorLevel:
		return "<3>"
	case level >= WarningLevel:
		return "<4>"
	case level >= InfoLevel:
		return "<6>"
	default:
		return "<7>"
	}
}

// prefixLines prepends prefix to every line of data.
func prefixLines(data, prefix string) string {
	if prefix == "" || data == "" {
		return data
	}
	trailing := strings.HasSuffix(data, "\n")
	body := strings.TrimSuffix(data, "\n")
	out := prefix + strings.ReplaceAll(body, "\n", "\n"+prefix)
	if trailing {
		out += "\n"
	}
	return out
}

package logger

import (
	"context"
	"log"
	"log/slog"
	"strings"
)

// Slog returns a *slog.Logger writing through l. slog levels map onto the
// numeric severities: below Info is DEBUG, below Warn is INFO, below Error is
// WARNING, below Error+4 is ERROR and anything higher is CRITICAL.
// Attributes are appended to the message as key=value fields.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(&slogBridge{next: l.handler})
}

type slogBridge struct {
	next slog.Handler
}

var _ slog.Handler = &slogBridge{}

func fromSlogLevel(level slog.Level) Level {
	switch {
	case level < slog.LevelInfo:
		return DebugLevel
	case level < slog.LevelWarn:
		return InfoLevel
	case level < slog.LevelError:
		return WarningLevel
	case level < slog.LevelError+4:
		return ErrorLevel
	default:
		return CriticalLevel
	}
}

func (b *slogBridge) Enabled(ctx context.Context, level slog.Level) bool {
	return b.next.Enabled(ctx, slog.Level(fromSlogLevel(level)))
}

func (b *slogBridge) Handle(ctx context.Context, r slog.Record) error {
	nr := slog.NewRecord(r.Time, slog.Level(fromSlogLevel(r.Level)), r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		nr.AddAttrs(a)
		return true
	})
	return b.next.Handle(ctx, nr)
}

func (b *slogBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogBridge{next: b.next.WithAttrs(attrs)}
}

func (b *slogBridge) WithGroup(name string) slog.Handler {
	return &slogBridge{next: b.next.WithGroup(name)}
}

// stdlibPrefix matches the frames of the standard log package.
const stdlibPrefix = "log."

// stdWriter turns log.Logger output into lines at a fixed level.
type stdWriter struct {
	l     *Logger
	level Level
}

func (w *stdWriter) Write(p []byte) (int, error) {
	if !w.l.Enabled(w.level) {
		return len(p), nil
	}
	msg := strings.TrimSuffix(string(p), "\n")
	w.l.output(w.level, callerOutside(2, stdlibPrefix), msg)
	return len(p), nil
}

// StandardLogger returns a *log.Logger whose output is logged at level.
func (l *Logger) StandardLogger(level Level) *log.Logger {
	return log.New(&stdWriter{l: l, level: level}, "", 0)
}

// CaptureStandardLog redirects the standard log package's default logger
// through l at level, usually WarningLevel. The returned function restores
// the previous output, flags and prefix.
func (l *Logger) CaptureStandardLog(level Level) (restore func()) {
	out, flags, prefix := log.Writer(), log.Flags(), log.Prefix()
	log.SetOutput(&stdWriter{l: l, level: level})
	log.SetFlags(0)
	log.SetPrefix("")
	return func() {
		log.SetOutput(out)
		log.SetFlags(flags)
		log.SetPrefix(prefix)
	}
}

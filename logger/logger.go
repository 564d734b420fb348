package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// ErrOpenFile is returned by New when Config.FilePath cannot be opened.
var ErrOpenFile = errors.New("failed to open log file")

// Config defines options for New and Init.
type Config struct {
	// Level is the initial severity threshold.
	// Default: 0, which resolves to WarningLevel
	Level Level
	// Output receives the console lines.
	// Default: nil (os.Stderr)
	Output io.Writer
	// FilePath also appends plain lines to this file; empty disables file logging.
	// Default: "" (file logging disabled)
	FilePath string
	// Colorize enables ANSI color on the severity name of console lines.
	// Default: false
	Colorize bool
	// Journald prepends syslog priority prefixes like <4> to console lines.
	// Default: false
	Journald bool
}

// Logger writes level tagged lines annotated with the caller location.
// The threshold is read on every call, so SetLevel takes effect immediately.
// A Logger is safe for concurrent use.
type Logger struct {
	level   *slog.LevelVar
	sink    *sink
	handler *lineHandler
	exit    func(code int)
}

// New builds a Logger from config. It fails only when the file sink cannot be opened.
func New(config Config) (*Logger, error) {
	var file *os.File
	if config.FilePath != "" {
		f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrOpenFile, config.FilePath, err)
		}
		file = f
	}
	return newLogger(config, file), nil
}

func newLogger(config Config, file *os.File) *Logger {
	threshold := new(slog.LevelVar)
	if config.Level == 0 {
		config.Level = WarningLevel
	}
	threshold.Set(slog.Level(config.Level))

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	s := &sink{
		console:  out,
		colorize: config.Colorize,
		journald: config.Journald,
	}
	if file != nil {
		s.file = file
	}

	return &Logger{
		level:   threshold,
		sink:    s,
		handler: &lineHandler{sink: s, level: threshold},
		exit:    os.Exit,
	}
}

// SetLevel changes the threshold for the next call.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(slog.Level(level))
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	return Level(l.level.Level())
}

// Enabled reports whether a call at level would produce a line.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

// SetOutput replaces the console writer. The previous writer stops receiving lines.
func (l *Logger) SetOutput(w io.Writer) {
	l.sink.setConsole(w)
}

// Close closes the log file if one was opened. It is safe to call more than once.
func (l *Logger) Close() error {
	return l.sink.close()
}

// Handler returns the slog.Handler behind the logger. Records given to it
// must carry the numeric severities of this package as their level.
func (l *Logger) Handler() slog.Handler {
	return l.handler
}

// Debug logs msg at DebugLevel.
func (l *Logger) Debug(msg string) {
	l.log(DebugLevel, msg)
}

// Info logs msg at InfoLevel.
func (l *Logger) Info(msg string) {
	l.log(InfoLevel, msg)
}

// Warning logs msg at WarningLevel.
func (l *Logger) Warning(msg string) {
	l.log(WarningLevel, msg)
}

// Error logs msg at ErrorLevel.
func (l *Logger) Error(msg string) {
	l.log(ErrorLevel, msg)
}

// Critical logs msg at CriticalLevel.
func (l *Logger) Critical(msg string) {
	l.log(CriticalLevel, msg)
}

// Log logs msg at an arbitrary level.
func (l *Logger) Log(level Level, msg string) {
	l.log(level, msg)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) {
	l.logf(DebugLevel, format, v)
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	l.logf(InfoLevel, format, v)
}

// Warningf logs a warning message formatted with fmt.Sprintf.
func (l *Logger) Warningf(format string, v ...any) {
	l.logf(WarningLevel, format, v)
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	l.logf(ErrorLevel, format, v)
}

// Criticalf logs a critical message formatted with fmt.Sprintf.
func (l *Logger) Criticalf(format string, v ...any) {
	l.logf(CriticalLevel, format, v)
}

// log and logf must be called directly by an exported function: the caller
// location is taken at a fixed depth from here.
func (l *Logger) log(level Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.output(level, callerPC(4), msg)
}

func (l *Logger) logf(level Level, format string, v []any) {
	if !l.Enabled(level) {
		return
	}
	l.output(level, callerPC(4), fmt.Sprintf(format, v...))
}

// callerPC skips [runtime.Callers, callerPC, log, exported method] by default.
func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	if runtime.Callers(skip, pcs[:]) == 0 {
		return 0
	}
	return pcs[0]
}

func (l *Logger) output(level Level, pc uintptr, msg string, attrs ...slog.Attr) {
	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pc)
	r.AddAttrs(attrs...)
	// Write errors are not reported to the caller of a severity method.
	_ = l.handler.Handle(context.Background(), r)
}

package logger

import (
	"sync/atomic"
)

// std is the process-wide logger used by the package level functions.
var std atomic.Pointer[Logger]

func init() {
	std.Store(newLogger(Config{}, nil))
}

// Default returns the process-wide logger.
func Default() *Logger {
	return std.Load()
}

// SetDefault makes l the process-wide logger. A nil l is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		std.Store(l)
	}
}

// Init builds a logger from config and makes it the process-wide logger,
// closing the file of the one it replaces. On error the current logger is kept.
// Call Close() to properly close the log file when shutting down.
func Init(config Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	previous := std.Swap(l)
	if previous != nil {
		return previous.Close()
	}
	return nil
}

// Close closes the log file of the process-wide logger, if any.
func Close() error {
	return Default().Close()
}

// SetLevel changes the threshold of the process-wide logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// GetLevel returns the threshold of the process-wide logger.
func GetLevel() Level {
	return Default().Level()
}

// Debug logs msg at DebugLevel on the process-wide logger.
func Debug(msg string) {
	Default().log(DebugLevel, msg)
}

// Info logs msg at InfoLevel on the process-wide logger.
func Info(msg string) {
	Default().log(InfoLevel, msg)
}

// Warning logs msg at WarningLevel on the process-wide logger.
func Warning(msg string) {
	Default().log(WarningLevel, msg)
}

// Error logs msg at ErrorLevel on the process-wide logger.
func Error(msg string) {
	Default().log(ErrorLevel, msg)
}

// Critical logs msg at CriticalLevel on the process-wide logger.
func Critical(msg string) {
	Default().log(CriticalLevel, msg)
}

// Log logs msg at an arbitrary level on the process-wide logger.
func Log(level Level, msg string) {
	Default().log(level, msg)
}

// Debugf, Infof, Warningf, Errorf and Criticalf format with fmt.Sprintf and
// log on the process-wide logger.
func Debugf(format string, v ...any) {
	Default().logf(DebugLevel, format, v)
}

func Infof(format string, v ...any) {
	Default().logf(InfoLevel, format, v)
}

func Warningf(format string, v ...any) {
	Default().logf(WarningLevel, format, v)
}

func Errorf(format string, v ...any) {
	Default().logf(ErrorLevel, format, v)
}

func Criticalf(format string, v ...any) {
	Default().logf(CriticalLevel, format, v)
}

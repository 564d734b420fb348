package logger

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// hclogPrefix matches the frames of the hclog package.
const hclogPrefix = "github.com/hashicorp/go-hclog."

// hclogSink receives every record of an hclog.InterceptLogger.
type hclogSink struct {
	l *Logger
}

var _ hclog.SinkAdapter = hclogSink{}

func fromHCLogLevel(level hclog.Level) (Level, bool) {
	switch level {
	case hclog.Trace, hclog.Debug:
		return DebugLevel, true
	case hclog.NoLevel, hclog.Info:
		return InfoLevel, true
	case hclog.Warn:
		return WarningLevel, true
	case hclog.Error:
		return ErrorLevel, true
	default:
		return 0, false
	}
}

func (s hclogSink) Accept(name string, level hclog.Level, msg string, args ...interface{}) {
	lvl, ok := fromHCLogLevel(level)
	if !ok || !s.l.Enabled(lvl) {
		return
	}
	if name != "" {
		msg = name + ": " + msg
	}
	s.l.output(lvl, callerOutside(2, hclogPrefix), msg+encodeFields(args...))
}

// HCLog returns an hclog logger for libraries that require one. Its records
// are filtered by l's threshold and written as l's lines, with the logger name
// prefixed to the message and key/value pairs appended.
func (l *Logger) HCLog(name string) hclog.InterceptLogger {
	intercept := hclog.NewInterceptLogger(&hclog.LoggerOptions{
		Name:   name,
		Output: io.Discard,
		Level:  hclog.Trace,
	})
	intercept.RegisterSink(hclogSink{l: l})
	return intercept
}

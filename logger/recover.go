package logger

import (
	"fmt"
	"log/slog"
	"runtime/debug"
)

// uncaughtExitCode is the process exit status after a recovered panic.
const uncaughtExitCode = 1

// Recover is the top-level error boundary. Install it once at process entry:
//
//	func main() {
//		defer logger.Recover()
//		...
//	}
//
// A panic reaching it is logged at CriticalLevel, located at the panic site and
// followed by the goroutine traceback, then the process exits with status 1.
// Go's default panic report is not printed.
func (l *Logger) Recover() {
	if r := recover(); r != nil {
		l.uncaught(r)
	}
}

// Recover is the top-level error boundary for the process-wide logger.
// The logger is looked up when the panic happens, so Init may run after the defer.
func Recover() {
	if r := recover(); r != nil {
		Default().uncaught(r)
	}
}

// Go runs fn in a new goroutine guarded by Recover. A panic in another
// goroutine cannot be recovered by the boundary installed in main.
func (l *Logger) Go(fn func()) {
	go func() {
		defer l.Recover()
		fn()
	}()
}

func (l *Logger) uncaught(value any) {
	if l.Enabled(CriticalLevel) {
		l.output(CriticalLevel, panicSite(), fmt.Sprintf("Uncaught exception: %v", value),
			slog.String(tracebackKey, string(debug.Stack())))
	}
	l.exit(uncaughtExitCode)
}

// Package logger provides a leveled logger whose threshold can change at
// runtime and whose lines carry the location of the code that logged them.
//
// # Line Format
//
// Every call writes one line to the configured output (stderr by default):
//
//	SEVERITY:MESSAGE:MODULE:FUNCTION:LINE
//
// MODULE is the caller's source file name without ".go", FUNCTION is the
// function name without its package path and LINE is the line of the call:
//
//	WARNING:disk full:writer:flush:42
//
// # Levels
//
// Levels are integers: DEBUG=10, INFO=20, WARNING=30, ERROR=40, CRITICAL=50.
// A call is written when its level is at or above the threshold. The threshold
// is read on every call, so a change applies to the next one:
//
//	log, err := logger.New(logger.Config{Level: logger.InfoLevel})
//	log.Debug("tick")       // dropped
//	log.SetLevel(logger.DebugLevel)
//	log.Debug("tick")       // DEBUG:tick:main:main:12
//
// # Process-wide Logger
//
// The package level functions use a default logger that writes WARNING and
// above to stderr. Replace it at startup:
//
//	cfg, err := logger.ConfigFromEnv() // LOGLEVEL, LOG_COLOR, LOG_FILE, JOURNAL_STREAM
//	if err != nil { ... }
//	if err := logger.Init(cfg); err != nil { ... }
//	defer logger.Close()
//
//	logger.SetLevel(logger.InfoLevel)
//	logger.Warning("disk full")
//
// # Error Boundary
//
// Install the boundary once, at process entry, to log panics at CRITICAL
// instead of Go's default report:
//
//	func main() {
//		defer logger.Recover()
//		...
//	}
//
// # Other Logging APIs
//
// Slog, HCLog and StandardLogger return log/slog, hclog and standard library
// loggers that write through the same threshold and line format.
// CaptureStandardLog redirects the standard library's default logger.
package logger

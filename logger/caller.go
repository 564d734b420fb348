package logger

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const unknownCaller = "unknown"

// location is the module, function and line of the code that made a log call.
type location struct {
	module   string
	function string
	line     int
}

func (loc location) String() string {
	return loc.module + ":" + loc.function + ":" + strconv.Itoa(loc.line)
}

// locationFromPC resolves a program counter captured with runtime.Callers.
func locationFromPC(pc uintptr) location {
	if pc == 0 {
		return location{module: unknownCaller, function: unknownCaller}
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.Function == "" && frame.File == "" {
		return location{module: unknownCaller, function: unknownCaller}
	}
	return location{
		module:   moduleName(frame.File),
		function: functionName(frame.Function),
		line:     frame.Line,
	}
}

// moduleName returns the source file basename without the .go extension.
func moduleName(file string) string {
	if file == "" {
		return unknownCaller
	}
	return strings.TrimSuffix(filepath.Base(file), ".go")
}

// functionName strips the package path from a runtime function name.
// "github.com/a/b.(*T).m" becomes "T.m" and "main.flush" becomes "flush".
func functionName(full string) string {
	if full == "" {
		return unknownCaller
	}
	if lastSlash := strings.LastIndex(full, "/"); lastSlash >= 0 {
		full = full[lastSlash+1:]
	}
	if dot := strings.Index(full, "."); dot >= 0 && dot+1 < len(full) {
		full = full[dot+1:]
	}
	return strings.NewReplacer("(*", "", "(", "", ")", "").Replace(full)
}

// callerOutside returns the PC of the first frame above skip whose function
// does not belong to one of the given package prefixes. It is used by the
// bridges, where the call depth depends on a third-party package.
func callerOutside(skip int, prefixes ...string) uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip+1, pcs[:])
	for _, pc := range pcs[:n] {
		if !hasAnyPrefix(frameFunction(pc), prefixes) {
			return pc
		}
	}
	return 0
}

// panicSite returns the PC of the frame that raised the panic currently being
// recovered, or 0 when it cannot be found.
func panicSite() uintptr {
	var pcs [64]uintptr
	n := runtime.Callers(2, pcs[:])
	seenPanic := false
	for _, pc := range pcs[:n] {
		fn := frameFunction(pc)
		switch {
		case fn == "runtime.gopanic":
			seenPanic = true
		case seenPanic && !strings.HasPrefix(fn, "runtime."):
			return pc
		}
	}
	return 0
}

// frameFunction resolves a single entry of a runtime.Callers slice.
func frameFunction(pc uintptr) string {
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return frame.Function
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

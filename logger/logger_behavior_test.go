package logger

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, config Config) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	config.Output = buf
	l, err := New(config)
	require.NoError(t, err)
	return l, buf
}

// nextLine returns the line number following the call.
func nextLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line + 1
}

func outputLines(buf *bytes.Buffer) []string {
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestThresholdFiltering(t *testing.T) {
	t.Parallel()

	for _, threshold := range AllLevels() {
		t.Run(threshold.String(), func(t *testing.T) {
			t.Parallel()
			l, buf := newTestLogger(t, Config{Level: threshold})

			for _, level := range AllLevels() {
				buf.Reset()
				l.Log(level, "msg")
				if level >= threshold {
					assert.Len(t, outputLines(buf), 1, "level %s should pass threshold %s", level, threshold)
				} else {
					assert.Empty(t, buf.String(), "level %s should be dropped by threshold %s", level, threshold)
				}
			}
		})
	}
}

func TestSeverityMethods(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{Level: DebugLevel})

	line := nextLine()
	l.Debug("d")
	l.Info("i")
	l.Warning("w")
	l.Error("e")
	l.Critical("c")

	expected := []string{
		fmt.Sprintf("DEBUG:d:logger_behavior_test:TestSeverityMethods:%d", line),
		fmt.Sprintf("INFO:i:logger_behavior_test:TestSeverityMethods:%d", line+1),
		fmt.Sprintf("WARNING:w:logger_behavior_test:TestSeverityMethods:%d", line+2),
		fmt.Sprintf("ERROR:e:logger_behavior_test:TestSeverityMethods:%d", line+3),
		fmt.Sprintf("CRITICAL:c:logger_behavior_test:TestSeverityMethods:%d", line+4),
	}
	assert.Equal(t, expected, outputLines(buf))
}

func TestFormattedMethods(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{Level: DebugLevel})

	line := nextLine()
	l.Warningf("disk %s at %d%%", "full", 99)
	l.Debugf("skip %s", "nothing")

	lines := outputLines(buf)
	require.Len(t, lines, 2)
	assert.Equal(t, fmt.Sprintf("WARNING:disk full at 99%%:logger_behavior_test:TestFormattedMethods:%d", line), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "DEBUG:skip nothing:"))
}

func TestSetLevelAppliesToNextCall(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{Level: WarningLevel})

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.SetLevel(InfoLevel)
	assert.Equal(t, InfoLevel, l.Level())
	l.Info("kept")
	assert.Contains(t, buf.String(), "INFO:kept:")

	buf.Reset()
	l.SetLevel(CriticalLevel)
	l.Error("dropped again")
	assert.Empty(t, buf.String())
}

func TestDefaultThresholdIsWarning(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{})

	assert.Equal(t, WarningLevel, l.Level())
	l.Info("dropped")
	l.Warning("kept")
	assert.Len(t, outputLines(buf), 1)
}

func TestUnnamedLevels(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{Level: Level(25)})

	l.Info("below")
	l.Log(Level(27), "custom")
	l.Warning("above")

	lines := outputLines(buf)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Level 27:custom:"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "WARNING:above:"), lines[1])
}

func TestMessageKeptVerbatim(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{Level: DebugLevel})

	messages := []string{"", "a:b:c", "100% sure", "unicode ✓", "  spaced  "}
	for _, msg := range messages {
		buf.Reset()
		assert.NotPanics(t, func() { l.Info(msg) })
		assert.True(t, strings.HasPrefix(buf.String(), "INFO:"+msg+":logger_behavior_test:"), buf.String())
	}
}

func TestSetOutputReplacesSink(t *testing.T) {
	t.Parallel()
	l, first := newTestLogger(t, Config{})
	second := new(bytes.Buffer)

	l.Warning("one")
	l.SetOutput(second)
	l.SetOutput(second)
	l.Warning("two")
	l.Warning("three")

	assert.Len(t, outputLines(first), 1)
	assert.Len(t, outputLines(second), 2, "a replaced sink must not duplicate lines")
}

func TestRepeatedCallsDoNotDuplicate(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{Level: DebugLevel})

	for i := range 50 {
		l.SetLevel(DebugLevel)
		l.Infof("call-%d", i)
	}

	lines := outputLines(buf)
	require.Len(t, lines, 50)
	for i, line := range lines {
		assert.Equal(t, 1, strings.Count(buf.String(), fmt.Sprintf("call-%d:", i)), line)
	}
}

func TestMethodCallerLocation(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{})

	line := flusher{log: l}.flush()

	assert.Equal(t, fmt.Sprintf("WARNING:flushing:logger_behavior_test:flusher.flush:%d\n", line), buf.String())
}

type flusher struct {
	log *Logger
}

func (f flusher) flush() int {
	line := nextLine()
	f.log.Warning("flushing")
	return line
}

func TestClosureCallerLocation(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{})

	func() {
		l.Error("inside")
	}()

	assert.Contains(t, buf.String(), ":logger_behavior_test:TestClosureCallerLocation.func1:")
}

func TestColorizedOutput_UsesAnsi(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{Colorize: true})

	l.Warning("color-warning")

	got := buf.String()
	assert.Contains(t, got, "\033[")
	assert.Contains(t, got, "color-warning")
}

func TestPlainOutput_NoAnsi(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{})

	l.Error("plain-error")

	assert.NotContains(t, buf.String(), "\033[")
}

func TestSyslogPrefixWhenJournaldSet(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(t, Config{Level: DebugLevel, Journald: true})

	l.Debug("dbg")

	assert.True(t, strings.HasPrefix(buf.String(), "<7>DEBUG:dbg:"), buf.String())
}

func TestSyslogPrefixForLevels(t *testing.T) {
	t.Parallel()

	cases := map[Level]string{
		DebugLevel:    "<7>",
		InfoLevel:     "<6>",
		Level(25):     "<6>",
		WarningLevel:  "<4>",
		ErrorLevel:    "<3>",
		CriticalLevel: "<2>",
		Level(99):     "<2>",
	}

	for level, want := range cases {
		assert.Equal(t, want, syslogPrefixForLevel(level), "level %d", int(level))
	}
}

func TestPrefixLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<2>a\n<2>\tb\n", prefixLines("a\n\tb\n", "<2>"))
	assert.Equal(t, "<2>a", prefixLines("a", "<2>"))
	assert.Equal(t, "", prefixLines("", "<2>"))
}

func TestFunctionName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"main.flush":                          "flush",
		"github.com/a/writer.flush":           "flush",
		"github.com/a/writer.(*Writer).flush": "Writer.flush",
		"github.com/a/writer.Writer.flush":    "Writer.flush",
		"github.com/a/writer.flush.func1":     "flush.func1",
		"":                                    "unknown",
	}
	for in, want := range cases {
		assert.Equal(t, want, functionName(in), in)
	}
}

func TestUnknownCaller(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown:unknown:0", locationFromPC(0).String())
}

package logger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Level is a numeric log severity. Higher values are more severe.
// Any integer is a valid threshold; the named constants are the conventional ones.
type Level int

const (
	// DebugLevel enables debug logging.
	DebugLevel Level = 10
	// InfoLevel enables informational logging.
	InfoLevel Level = 20
	// WarningLevel enables warning logging. It is the default threshold.
	WarningLevel Level = 30
	// ErrorLevel enables error logging.
	ErrorLevel Level = 40
	// CriticalLevel enables critical logging.
	CriticalLevel Level = 50
)

// ErrInvalidLevel is returned when a level name cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")

// AllLevels returns the named levels in ascending order.
func AllLevels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarningLevel,
		ErrorLevel,
		CriticalLevel,
	}
}

// String returns the upper case level name, or "Level N" for unnamed values.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Level %d", int(l))
	}
}

// ParseLevel accepts a level name (case insensitive, with the WARN, CRIT and
// FATAL aliases) or an integer.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL", "CRIT", "FATAL":
		return CriticalLevel, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return Level(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLevel.
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// Set implements pflag.Value so a Level can be bound to a command line flag.
func (l *Level) Set(s string) error {
	return l.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (l *Level) Type() string {
	return "level"
}

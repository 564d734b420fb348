package logger

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidEnv is returned by ConfigFromEnv when a variable cannot be parsed.
var ErrInvalidEnv = errors.New("environment variables not valid")

type envConfig struct {
	Level         Level  `env:"LOGLEVEL" envDefault:"WARNING"`
	Colorize      bool   `env:"LOG_COLOR" envDefault:"false"`
	FilePath      string `env:"LOG_FILE"`
	JournalStream string `env:"JOURNAL_STREAM"`
}

// ConfigFromEnv reads a Config from the environment:
//
//	LOGLEVEL        level name or number (default WARNING)
//	LOG_COLOR       colorize console lines (default false)
//	LOG_FILE        also append lines to this file
//	JOURNAL_STREAM  set by systemd; enables journald priority prefixes
//
// Output is left nil, i.e. os.Stderr.
func ConfigFromEnv() (Config, error) {
	vars, err := env.ParseAs[envConfig]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidEnv, err.Error())
	}
	return Config{
		Level:    vars.Level,
		FilePath: vars.FilePath,
		Colorize: vars.Colorize,
		Journald: vars.JournalStream != "",
	}, nil
}

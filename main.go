package main

import (
	"os"

	"github.com/mordilloSan/go-dynlog/internal/cmd"
	"github.com/mordilloSan/go-dynlog/logger"
)

// Usage: go-dynlog [--log-level LEVEL] [--color] [--log-file PATH] emit|demo|version
// Example: LOGLEVEL=INFO go-dynlog demo --panic
func main() {
	// Panics anywhere below are logged at CRITICAL instead of Go's default report.
	defer logger.Recover()

	if err := cmd.NewRootCmd().Execute(); err != nil {
		_ = logger.Close()
		os.Exit(1)
	}
}

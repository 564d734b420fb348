// Package info holds application version information.
package info

var (
	// AppName is the name of the application.
	AppName = "go-dynlog"
	// Version is overridden at build time with -ldflags.
	Version = "DEV"
	// BuildDate is set at build time, YYYY-MM-DD.
	BuildDate = ""
)

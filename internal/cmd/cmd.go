// Package cmd contains the command line interface of go-dynlog.
package cmd

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-dynlog/internal/info"
	"github.com/mordilloSan/go-dynlog/logger"
)

const (
	rootShort = "go-dynlog writes log lines tagged with severity and caller location"
	rootLong  = `go-dynlog writes log lines in the format

	  SEVERITY:MESSAGE:MODULE:FUNCTION:LINE

	Defaults come from the LOGLEVEL, LOG_COLOR, LOG_FILE and JOURNAL_STREAM
	environment variables; flags override them.`

	emitShort   = "write one message at the given level"
	emitExample = `# Warn from a shell script
	go-dynlog emit warning disk almost full

	# Numeric levels are accepted
	go-dynlog --log-level 20 emit 25 between info and warning`

	demoShort = "write one line per severity"
	demoLong  = `Write one line per severity, then one line through each bridge
	(log/slog, hclog and the standard log package).
	Use --panic to see the error boundary report an uncaught panic.`

	versionShort = "display the go-dynlog version"

	logLevelFlagName      = "log-level"
	logLevelShortFlagName = "v"
	colorFlagName         = "color"
	logFileFlagName       = "log-file"
	panicFlagName         = "panic"
)

var errInvalidLevel = errors.New("invalid level argument")

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	level    logger.Level
	colorize bool
	filePath string
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	f.level = logger.WarningLevel
	flags.VarP(&f.level, logLevelFlagName, logLevelShortFlagName, "set the threshold (DEBUG, INFO, WARNING, ERROR, CRITICAL or a number)")
	flags.BoolVar(&f.colorize, colorFlagName, false, "colorize the severity name")
	flags.StringVar(&f.filePath, logFileFlagName, "", "also append lines to this file")
}

// config merges the environment with the flags set on the command line.
func (f *rootFlags) config(cmd *cobra.Command) (logger.Config, error) {
	cfg, err := logger.ConfigFromEnv()
	if err != nil {
		return logger.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed(logLevelFlagName) {
		cfg.Level = f.level
	}
	if flags.Changed(colorFlagName) {
		cfg.Colorize = f.colorize
	}
	if flags.Changed(logFileFlagName) {
		cfg.FilePath = f.filePath
	}
	cfg.Output = cmd.ErrOrStderr()
	return cfg, nil
}

// NewRootCmd constructs the root command. Its pre-run replaces the process-wide
// logger, so the error boundary installed in main reports through it.
func NewRootCmd() *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:   info.AppName,
		Short: heredoc.Doc(rootShort),
		Long:  heredoc.Doc(rootLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flag.config(cmd)
			if err != nil {
				return err
			}
			return logger.Init(cfg)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return logger.Close()
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(
		emitCmd(),
		demoCmd(),
		versionCmd(),
	)

	return cmd
}

func emitCmd() *cobra.Command {
	levels := make([]string, 0, len(logger.AllLevels()))
	for _, level := range logger.AllLevels() {
		levels = append(levels, strings.ToLower(level.String()))
	}

	return &cobra.Command{
		Use:     "emit LEVEL MESSAGE...",
		Short:   heredoc.Doc(emitShort),
		Example: heredoc.Doc(emitExample),
		Args:    cobra.MinimumNArgs(2),

		ValidArgs: levels,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(args[0])
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
				return fmt.Errorf("%w: %w", errInvalidLevel, err)
			}

			logger.Log(level, strings.Join(args[1:], " "))
			return nil
		},
	}
}

func demoCmd() *cobra.Command {
	var withPanic bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: heredoc.Doc(demoShort),
		Long:  heredoc.Doc(demoLong),
		Args:  cobra.NoArgs,

		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(*cobra.Command, []string) {
			runDemo(withPanic)
		},
	}

	cmd.Flags().BoolVar(&withPanic, panicFlagName, false, "panic after the demo lines")
	return cmd
}

func runDemo(withPanic bool) {
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warning("warning message")
	logger.Error("error message")
	logger.Critical("critical message")

	current := logger.Default()
	current.Slog().Warn("message from log/slog", "bridge", "slog")
	current.HCLog("demo").Warn("message from hclog", "bridge", "hclog")

	restore := current.CaptureStandardLog(logger.WarningLevel)
	log.Print("message from the standard log package")
	restore()

	if withPanic {
		panic("demo panic")
	}
}

// versionCmd constructs the command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: heredoc.Doc(versionShort),
		Args:  cobra.NoArgs,

		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(info.Version, info.BuildDate, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}

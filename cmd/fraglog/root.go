package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/helixml/fraglog"
	"github.com/helixml/fraglog/internal/config"
	"github.com/helixml/fraglog/internal/log"
	"github.com/spf13/cobra"
)

// verboseArg is the optional trailing positional argument that enables
// diagnostics.
const verboseArg = "verbose"

var (
	// ErrMissingParameters indicates fewer than three positional arguments.
	ErrMissingParameters = errors.New("missing parameters")

	// ErrUnexpectedArgument indicates a fourth argument other than "verbose".
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

// extractFlags holds the flag values of the root command.
type extractFlags struct {
	envFile   string
	logLevel  string
	logFormat string
	verbose   bool
}

func rootCmd() *cobra.Command {
	var flags extractFlags

	cmd := &cobra.Command{
		Use:   "fraglog <log_filepath> <period_start> <period_end> [verbose]",
		Short: "Extract the lines of a log file that fall inside a time period",
		Long: `Extract the lines of a chronologically ordered log file whose leading
timestamp falls inside [period_start, period_end], both inclusive.
Matching lines are written unchanged to stdout.

Supported period formats (both periods must use the same kind):
  HH:MM:SS               time only, compared with the time at the start of each line
  YYYY-MM-DD             date only, meaning 00:00:00 of that day
  YYYY-MM-DD HH:MM:SS    date and time, compared with the datetime at the start of each line

Use "-" as log_filepath to read stdin. Gzip-compressed files are read transparently.
A log file named "help" or "version" must be given with a path, e.g. ./version.

Environment variables (FRAGLOG_ prefix, also read from a .env file):
  FRAGLOG_LOG_LEVEL              Diagnostics level: DEBUG, INFO, WARN, ERROR (default: INFO)
  FRAGLOG_LOG_FORMAT             Diagnostics format: pretty, json (default: pretty)
  FRAGLOG_LOG_FILE_PATH          Write diagnostics to this rotating file instead of stderr
  FRAGLOG_LOG_FILE_MAX_SIZE_MB   Rotation size (default: 10)
  FRAGLOG_LOG_FILE_MAX_BACKUPS   Rotated files kept (default: 3)
  FRAGLOG_VERBOSE                Same as the trailing "verbose" argument (default: false)
  FRAGLOG_MAX_LINE_BYTES         Longest accepted log line (default: 1048576)`,
		Example:       `  fraglog myfile.log '2025-04-10 10:00:00' '2025-04-11 10:00:00' verbose`,
		Args:          validateArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			flags.verbose = flags.verbose || len(args) == 4
			return runExtract(cmd, args[0], args[1], args[2], flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Diagnostics level: DEBUG, INFO, WARN, ERROR")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Diagnostics format: pretty, json")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Report diagnostics on stderr")

	cmd.AddCommand(versionCmd())

	return cmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) < 3 {
		return ErrMissingParameters
	}
	if len(args) > 4 {
		return fmt.Errorf("%w: %q", ErrUnexpectedArgument, args[4])
	}
	if len(args) == 4 && args[3] != verboseArg {
		return fmt.Errorf("%w: %q, only %q may follow <period_end>", ErrUnexpectedArgument, args[3], verboseArg)
	}
	return nil
}

func runExtract(cmd *cobra.Command, path, start, end string, flags extractFlags) error {
	cfg, err := loadConfig(flags.envFile)
	if err != nil {
		return err
	}
	cfg = applyExtractOverrides(cfg, flags)

	logger, err := log.NewLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Close() }()
	slogger := logger.Slog()

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(cmd.Context(), slog.LevelInfo, "fraglog", attrs...)

	client := fraglog.New(
		fraglog.WithLogger(slogger),
		fraglog.WithMaxLineBytes(cfg.MaxLineBytes()),
	)
	summary, err := client.Extract(path, start, end, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	slogger.Info("end",
		slog.Int("lines_read", summary.LinesRead),
		slog.Int("lines_emitted", summary.LinesEmitted),
	)
	return nil
}

// applyExtractOverrides applies command line flag overrides to the config.
func applyExtractOverrides(cfg config.AppConfig, flags extractFlags) config.AppConfig {
	var opts []config.AppConfigOption

	if flags.verbose {
		opts = append(opts, config.WithVerbose(true))
	}
	if flags.logLevel != "" {
		opts = append(opts, config.WithLogLevel(flags.logLevel))
	}
	if flags.logFormat != "" {
		opts = append(opts, config.WithLogFormat(config.ParseLogFormat(flags.logFormat)))
	}

	return cfg.Apply(opts...)
}

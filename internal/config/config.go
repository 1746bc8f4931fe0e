// Package config provides application configuration.
package config

import (
	"log/slog"
)

// Default configuration values.
const (
	DefaultLogLevel          = "INFO"
	DefaultLogFileMaxSizeMB  = 10
	DefaultLogFileMaxBackups = 3
	DefaultMaxLineBytes      = 1024 * 1024
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "FRAGLOG"

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// LogFileConfig configures the rotating diagnostics file.
type LogFileConfig struct {
	path       string
	maxSizeMB  int
	maxBackups int
}

// NewLogFileConfig creates a LogFileConfig with defaults and no path.
func NewLogFileConfig() LogFileConfig {
	return LogFileConfig{
		maxSizeMB:  DefaultLogFileMaxSizeMB,
		maxBackups: DefaultLogFileMaxBackups,
	}
}

// Path returns the file path.
func (l LogFileConfig) Path() string { return l.path }

// MaxSizeMB returns the size in megabytes that triggers a rotation.
func (l LogFileConfig) MaxSizeMB() int { return l.maxSizeMB }

// MaxBackups returns how many rotated files are kept.
func (l LogFileConfig) MaxBackups() int { return l.maxBackups }

// IsConfigured returns true if a path is set.
func (l LogFileConfig) IsConfigured() bool {
	return l.path != ""
}

// WithPath returns a new config with the specified path.
func (l LogFileConfig) WithPath(path string) LogFileConfig {
	l.path = path
	return l
}

// WithMaxSizeMB returns a new config with the specified rotation size.
func (l LogFileConfig) WithMaxSizeMB(n int) LogFileConfig {
	if n > 0 {
		l.maxSizeMB = n
	}
	return l
}

// WithMaxBackups returns a new config with the specified backup count.
func (l LogFileConfig) WithMaxBackups(n int) LogFileConfig {
	if n >= 0 {
		l.maxBackups = n
	}
	return l
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	logLevel     string
	logFormat    LogFormat
	logFile      LogFileConfig
	verbose      bool
	maxLineBytes int
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:     DefaultLogLevel,
		logFormat:    LogFormatPretty,
		logFile:      NewLogFileConfig(),
		maxLineBytes: DefaultMaxLineBytes,
	}
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// LogFile returns the diagnostics file config.
func (c AppConfig) LogFile() LogFileConfig { return c.logFile }

// Verbose returns whether diagnostics are reported.
func (c AppConfig) Verbose() bool { return c.verbose }

// MaxLineBytes returns the longest log line accepted.
func (c AppConfig) MaxLineBytes() int { return c.maxLineBytes }

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithLogFile sets the diagnostics file config.
func WithLogFile(l LogFileConfig) AppConfigOption {
	return func(c *AppConfig) { c.logFile = l }
}

// WithVerbose enables or disables diagnostics.
func WithVerbose(verbose bool) AppConfigOption {
	return func(c *AppConfig) { c.verbose = verbose }
}

// WithMaxLineBytes sets the longest accepted log line.
func WithMaxLineBytes(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.maxLineBytes = n
		}
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
func (c AppConfig) LogAttrs() []slog.Attr {
	logFile := "(stderr)"
	if c.logFile.IsConfigured() {
		logFile = c.logFile.Path()
	}
	return []slog.Attr{
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
		slog.String("log_file", logFile),
		slog.Int("max_line_bytes", c.maxLineBytes),
	}
}

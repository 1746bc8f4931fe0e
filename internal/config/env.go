package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the FRAGLOG_ prefix.
// Nested structs use underscore delimiter (e.g., FRAGLOG_LOG_FILE_PATH).
type EnvConfig struct {
	// LogLevel is the verbosity of diagnostics.
	// Env: FRAGLOG_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO" validate:"oneof=DEBUG INFO WARN WARNING ERROR"`

	// LogFormat is the diagnostics format (pretty or json).
	// Env: FRAGLOG_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty" validate:"oneof=pretty json"`

	// LogFile sends diagnostics to a rotating file instead of stderr.
	LogFile LogFileEnv `envconfig:"LOG_FILE"`

	// Verbose enables diagnostics, like the trailing "verbose" argument.
	// Env: FRAGLOG_VERBOSE (default: false)
	Verbose bool `envconfig:"VERBOSE" default:"false"`

	// MaxLineBytes is the longest log line accepted.
	// Env: FRAGLOG_MAX_LINE_BYTES (default: 1048576)
	MaxLineBytes int `envconfig:"MAX_LINE_BYTES" default:"1048576" validate:"gt=0"`
}

// LogFileEnv holds environment configuration for the diagnostics file.
type LogFileEnv struct {
	// Path is the file to write. Empty means stderr.
	// Env: FRAGLOG_LOG_FILE_PATH
	Path string `envconfig:"PATH"`

	// MaxSizeMB is the size that triggers a rotation.
	// Env: FRAGLOG_LOG_FILE_MAX_SIZE_MB (default: 10)
	MaxSizeMB int `envconfig:"MAX_SIZE_MB" default:"10" validate:"gt=0"`

	// MaxBackups is how many rotated files are kept.
	// Env: FRAGLOG_LOG_FILE_MAX_BACKUPS (default: 3)
	MaxBackups int `envconfig:"MAX_BACKUPS" default:"3" validate:"gte=0"`
}

// LoadFromEnv loads configuration from FRAGLOG_ environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix(EnvPrefix)
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Normalize returns a copy with case-insensitive values canonicalised.
func (e EnvConfig) Normalize() EnvConfig {
	e.LogLevel = strings.ToUpper(strings.TrimSpace(e.LogLevel))
	e.LogFormat = strings.ToLower(strings.TrimSpace(e.LogFormat))
	e.LogFile.Path = strings.TrimSpace(e.LogFile.Path)
	return e
}

// Validate checks the values against their allowed ranges.
func (e EnvConfig) Validate() error {
	err := newValidator().Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %q", fe.Namespace(), fe.Value(), fe.Tag()+"="+fe.Param()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// newValidator reports fields by their environment variable names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("envconfig"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(ParseLogFormat(e.LogFormat)))
	}
	cfg = applyOption(cfg, WithLogFile(e.LogFile.ToLogFileConfig()))
	cfg = applyOption(cfg, WithVerbose(e.Verbose))
	cfg = applyOption(cfg, WithMaxLineBytes(e.MaxLineBytes))

	return cfg
}

// applyOption applies an option to the config.
func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

// ToLogFileConfig converts LogFileEnv to LogFileConfig.
func (l LogFileEnv) ToLogFileConfig() LogFileConfig {
	return NewLogFileConfig().
		WithPath(l.Path).
		WithMaxSizeMB(l.MaxSizeMB).
		WithMaxBackups(l.MaxBackups)
}

// ParseLogFormat parses a log format string.
func ParseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}

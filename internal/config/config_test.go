package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConstants(t *testing.T) {
	assert.Equal(t, "INFO", DefaultLogLevel)
	assert.Equal(t, 10, DefaultLogFileMaxSizeMB)
	assert.Equal(t, 3, DefaultLogFileMaxBackups)
	assert.Equal(t, 1048576, DefaultMaxLineBytes)
	assert.Equal(t, "FRAGLOG", EnvPrefix)
}

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
	assert.False(t, cfg.Verbose())
	assert.Equal(t, DefaultMaxLineBytes, cfg.MaxLineBytes())
	assert.False(t, cfg.LogFile().IsConfigured())
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.LogFile().MaxSizeMB())
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.LogFile().MaxBackups())
}

func TestNewAppConfigWithOptions(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithLogLevel("DEBUG"),
		WithLogFormat(LogFormatJSON),
		WithVerbose(true),
		WithMaxLineBytes(4096),
		WithLogFile(NewLogFileConfig().WithPath("/tmp/fraglog.log")),
	)

	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.True(t, cfg.Verbose())
	assert.Equal(t, 4096, cfg.MaxLineBytes())
	assert.Equal(t, "/tmp/fraglog.log", cfg.LogFile().Path())
}

func TestWithMaxLineBytes_IgnoresNonPositive(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithMaxLineBytes(0), WithMaxLineBytes(-5))
	assert.Equal(t, DefaultMaxLineBytes, cfg.MaxLineBytes())
}

func TestAppConfig_ApplyDoesNotMutate(t *testing.T) {
	original := NewAppConfig()
	updated := original.Apply(WithVerbose(true), WithLogLevel("ERROR"))

	assert.False(t, original.Verbose())
	assert.Equal(t, DefaultLogLevel, original.LogLevel())
	assert.True(t, updated.Verbose())
	assert.Equal(t, "ERROR", updated.LogLevel())
}

func TestLogFileConfig(t *testing.T) {
	cfg := NewLogFileConfig().WithPath("diag.log").WithMaxSizeMB(50).WithMaxBackups(0)

	assert.True(t, cfg.IsConfigured())
	assert.Equal(t, "diag.log", cfg.Path())
	assert.Equal(t, 50, cfg.MaxSizeMB())
	assert.Equal(t, 0, cfg.MaxBackups())

	cfg = cfg.WithMaxSizeMB(0).WithMaxBackups(-1)
	assert.Equal(t, 50, cfg.MaxSizeMB())
	assert.Equal(t, 0, cfg.MaxBackups())
}

func TestAppConfig_LogAttrs(t *testing.T) {
	attrs := NewAppConfig().LogAttrs()

	values := make(map[string]string, len(attrs))
	for _, a := range attrs {
		values[a.Key] = a.Value.String()
	}
	assert.Equal(t, "INFO", values["log_level"])
	assert.Equal(t, "pretty", values["log_format"])
	assert.Equal(t, "(stderr)", values["log_file"])
	assert.Equal(t, "1048576", values["max_line_bytes"])
}

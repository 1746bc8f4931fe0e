// Package log provides the structured diagnostics channel. Diagnostics never
// share a stream with extracted log lines.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/helixml/fraglog/internal/config"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger and owns the sink it writes to.
type Logger struct {
	logger *slog.Logger
	closer io.Closer
}

// NewLogger creates a Logger based on configuration. Non-verbose
// configurations get a logger that discards everything. Verbose output goes
// to stderr, or to a rotating file when one is configured.
func NewLogger(cfg config.AppConfig, stderr io.Writer) (*Logger, error) {
	if !cfg.Verbose() {
		return NewDiscardLogger(), nil
	}

	lf := cfg.LogFile()
	if !lf.IsConfigured() {
		return newLogger(stderr, cfg.LogFormat(), cfg.LogLevel(), isTerminal(stderr), nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(lf.Path()), 0o755); err != nil {
		return nil, err
	}
	rotating := &lumberjack.Logger{
		Filename:   lf.Path(),
		MaxSize:    lf.MaxSizeMB(),
		MaxBackups: lf.MaxBackups(),
		LocalTime:  true,
	}
	return newLogger(rotating, cfg.LogFormat(), cfg.LogLevel(), false, rotating), nil
}

// NewLoggerWithWriter creates a Logger that writes to the specified writer.
func NewLoggerWithWriter(w io.Writer, format config.LogFormat, level string) *Logger {
	return newLogger(w, format, level, false, nil)
}

// NewDiscardLogger creates a Logger that drops every record.
func NewDiscardLogger() *Logger {
	return newLogger(io.Discard, config.LogFormatPretty, "ERROR", false, nil)
}

func newLogger(w io.Writer, format config.LogFormat, level string, color bool, closer io.Closer) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = newTerminalHandler(w, opts, color)
	}

	return &Logger{
		logger: slog.New(handler),
		closer: closer,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

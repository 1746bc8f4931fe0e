package fraglog

import (
	"log/slog"

	"github.com/helixml/fraglog/infrastructure/logsource"
	"github.com/helixml/fraglog/internal/config"
)

// clientConfig holds configuration for Client construction.
// Defaults come from internal/config.
type clientConfig struct {
	logger       *slog.Logger
	maxLineBytes int
	opener       logsource.Opener
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		logger:       slog.New(slog.DiscardHandler),
		maxLineBytes: config.DefaultMaxLineBytes,
		opener:       logsource.Open,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithLogger sets the logger that receives diagnostics and warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxLineBytes sets the longest log line accepted.
func WithMaxLineBytes(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.maxLineBytes = n
		}
	}
}

// WithOpener replaces how log sources are opened.
func WithOpener(open logsource.Opener) Option {
	return func(c *clientConfig) {
		if open != nil {
			c.opener = open
		}
	}
}

// Package fraglog extracts the slice of a chronologically ordered log whose
// line timestamps fall inside a [start, end] window, streaming the matching
// lines without loading the file into memory.
//
// Basic usage:
//
//	client := fraglog.New(fraglog.WithLogger(logger))
//	summary, err := client.Extract("app.log", "2025-04-10 10:00:00", "2025-04-10 12:00:00", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Boundaries are HH:MM:SS, YYYY-MM-DD or YYYY-MM-DD HH:MM:SS, and both must
// be time-only or both must carry a date. Log lines must start with a
// timestamp in the matching format and be in ascending order.
package fraglog

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/helixml/fraglog/application/service"
	"github.com/helixml/fraglog/domain/timestamp"
)

// Client runs extractions.
type Client struct {
	logger       *slog.Logger
	maxLineBytes int
	open         func(path string) (io.ReadCloser, error)
}

// New creates a Client.
func New(opts ...Option) *Client {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Client{
		logger:       cfg.logger,
		maxLineBytes: cfg.maxLineBytes,
		open:         cfg.opener,
	}
}

// Extract writes the lines of the log at path whose timestamps fall inside
// [start, end] to w. Both boundaries are checked before the log is opened.
// The log is closed on every return path.
func (c *Client) Extract(path, start, end string, w io.Writer) (service.ScanSummary, error) {
	window, err := timestamp.ParseWindow(start, end)
	if err != nil {
		return service.ScanSummary{}, fmt.Errorf("invalid parameters: %w", err)
	}

	c.logger.Info("search period",
		slog.String("mode", window.Mode().String()),
		slog.String("start", window.Start().String()),
		slog.String("end", window.End().String()),
	)
	if window.EndsAtMidnight() {
		c.logger.Warn("period_end has no time, lines after 00:00:00 on that day are excluded",
			slog.String("end", window.End().String()),
		)
	}

	c.logger.Info("reading", slog.String("file", path))
	src, err := c.open(path)
	if err != nil {
		return service.ScanSummary{}, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			c.logger.Error("failed to close log", slog.String("file", path), slog.Any("error", err))
		}
	}()

	scanner := service.NewScanner(window,
		service.WithScannerLogger(c.logger),
		service.WithMaxLineBytes(c.maxLineBytes),
	)
	summary, err := scanner.Scan(src, w)
	if err != nil {
		return summary, fmt.Errorf("scan %s: %w", path, err)
	}

	attrs := []any{
		slog.Int("lines_read", summary.LinesRead),
		slog.Int("lines_emitted", summary.LinesEmitted),
		slog.Bool("stopped_at_end", summary.StoppedAtEnd),
	}
	if summary.LinesEmitted > 0 {
		attrs = append(attrs,
			slog.String("first", window.Format(summary.First)),
			slog.String("last", window.Format(summary.Last)),
		)
	}
	c.logger.Debug("scan finished", attrs...)
	return summary, nil
}

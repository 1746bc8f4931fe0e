package service

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/helixml/fraglog/domain/timestamp"
)

// DefaultMaxLineBytes is the longest line the scanner accepts.
const DefaultMaxLineBytes = 1024 * 1024

// ErrFileAfterWindow indicates the first line of the source is already past
// the end of the search period.
var ErrFileAfterWindow = errors.New("the file starts after the search period")

// scanState is the position of the scanner relative to the window.
type scanState int

const (
	stateSearching scanState = iota
	stateEmitting
	stateDone
)

// ScanSummary describes a completed scan.
type ScanSummary struct {
	// LinesRead counts the lines consumed from the source, including the
	// line that stopped the scan.
	LinesRead int
	// LinesEmitted counts the lines written to the output.
	LinesEmitted int
	// StartsInsideWindow is set when the first line is after the start
	// boundary, so earlier matching lines may be missing from the source.
	StartsInsideWindow bool
	// StoppedAtEnd is set when a line past the end boundary ended the scan
	// before the source was exhausted.
	StoppedAtEnd bool
	// First and Last are the timestamps of the first and last emitted lines.
	First timestamp.Datetime
	Last  timestamp.Datetime
}

// Scanner streams the lines of a chronologically ordered source whose
// timestamps fall inside a window.
type Scanner struct {
	window       timestamp.Window
	logger       *slog.Logger
	maxLineBytes int
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithScannerLogger sets the logger used for boundary warnings.
func WithScannerLogger(l *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxLineBytes sets the longest accepted line.
func WithMaxLineBytes(n int) ScannerOption {
	return func(s *Scanner) {
		if n > 0 {
			s.maxLineBytes = n
		}
	}
}

// NewScanner creates a Scanner for the given window.
func NewScanner(window timestamp.Window, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		window:       window,
		logger:       slog.New(slog.DiscardHandler),
		maxLineBytes: DefaultMaxLineBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Window returns the search window.
func (s *Scanner) Window() timestamp.Window {
	return s.window
}

// Scan reads r line by line and writes every line from the first one at or
// after the start boundary up to the last one at or before the end boundary.
// Lines must be in ascending timestamp order; this is not checked.
//
// A line whose timestamp cannot be parsed aborts the scan. Lines already
// written stay written.
func (s *Scanner) Scan(r io.Reader, w io.Writer) (ScanSummary, error) {
	var summary ScanSummary

	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, min(64*1024, s.maxLineBytes)), s.maxLineBytes)

	state := stateSearching
	for state != stateDone && lines.Scan() {
		line := lines.Text()
		summary.LinesRead++

		ts, err := s.window.Parse(line)
		if err != nil {
			return summary, fmt.Errorf("line %d: %w", summary.LinesRead, err)
		}

		if summary.LinesRead == 1 {
			if err := s.checkFirstLine(ts, &summary); err != nil {
				return summary, err
			}
		}

		if state == stateSearching {
			if s.window.CompareStart(ts) == timestamp.Less {
				continue
			}
			state = stateEmitting
		}
		// The window may fall between two lines, so the line that ends the
		// search can already be past the end.
		if s.window.CompareEnd(ts) == timestamp.Greater {
			summary.StoppedAtEnd = true
			state = stateDone
			continue
		}

		if err := writeLine(w, line); err != nil {
			return summary, fmt.Errorf("write line %d: %w", summary.LinesRead, err)
		}
		if summary.LinesEmitted == 0 {
			summary.First = ts
		}
		summary.LinesEmitted++
		summary.Last = ts
	}

	if err := lines.Err(); err != nil {
		return summary, fmt.Errorf("read line %d: %w", summary.LinesRead+1, err)
	}
	return summary, nil
}

// checkFirstLine rejects a source that begins after the window and warns
// when it begins inside it.
func (s *Scanner) checkFirstLine(ts timestamp.Datetime, summary *ScanSummary) error {
	if s.window.CompareEnd(ts) == timestamp.Greater {
		return fmt.Errorf("the file starts with %s, after %s: %w",
			s.window.Format(ts), s.window.End(), ErrFileAfterWindow)
	}
	if s.window.CompareStart(ts) == timestamp.Greater {
		summary.StartsInsideWindow = true
		s.logger.Warn("the file starts during the search period, lines before it may be missing",
			slog.String("first_line", s.window.Format(ts)),
			slog.String("period_start", s.window.Start().String()),
		)
	}
	return nil
}

func writeLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+"\n")
	return err
}

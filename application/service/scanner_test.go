package service

import (
	"bufio"
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/helixml/fraglog/domain/timestamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `2025-04-10 09:00:00 INFO boot
2025-04-10 09:30:00 INFO warmup done
2025-04-10 10:00:00 WARN disk 80%
2025-04-10 10:30:00 ERROR disk full
2025-04-10 11:00:00 INFO recovered
2025-04-10 12:00:00 INFO idle
2025-04-10 13:00:00 INFO shutdown
`

func newTestScanner(t *testing.T, start, end string, opts ...ScannerOption) *Scanner {
	t.Helper()
	w, err := timestamp.ParseWindow(start, end)
	require.NoError(t, err)
	return NewScanner(w, opts...)
}

func scan(t *testing.T, s *Scanner, input string) (string, ScanSummary, error) {
	t.Helper()
	var out bytes.Buffer
	summary, err := s.Scan(strings.NewReader(input), &out)
	return out.String(), summary, err
}

func TestScanner_DefaultLoggerDiscards(t *testing.T) {
	s := newTestScanner(t, "2025-04-10 09:30:00", "2025-04-10 10:00:00")
	assert.Equal(t, slog.DiscardHandler, s.logger.Handler())

	out, summary, err := scan(t, s, sampleLog[strings.Index(sampleLog, "2025-04-10 10:00:00"):])
	require.NoError(t, err)

	assert.True(t, summary.StartsInsideWindow)
	assert.Equal(t, "2025-04-10 10:00:00 WARN disk 80%\n", out)
}

func TestScanner_AllLinesInWindow(t *testing.T) {
	s := newTestScanner(t, "2025-04-10 08:00:00", "2025-04-10 14:00:00")

	out, summary, err := scan(t, s, sampleLog)
	require.NoError(t, err)

	assert.Equal(t, sampleLog, out)
	assert.Equal(t, 7, summary.LinesRead)
	assert.Equal(t, 7, summary.LinesEmitted)
	assert.False(t, summary.StoppedAtEnd)
	assert.True(t, summary.StartsInsideWindow)
	assert.Equal(t, "2025-04-10T09:00:00", summary.First.String())
	assert.Equal(t, "2025-04-10T13:00:00", summary.Last.String())
}

func TestScanner_FileAfterWindow(t *testing.T) {
	s := newTestScanner(t, "2025-04-09 08:00:00", "2025-04-09 18:00:00")

	out, summary, err := scan(t, s, sampleLog)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrFileAfterWindow)
	assert.Contains(t, err.Error(), "2025-04-10T09:00:00")
	assert.Empty(t, out)
	assert.Equal(t, 0, summary.LinesEmitted)
}

func TestScanner_FileStartsInsideWindow(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	s := newTestScanner(t, "2025-04-10 08:00:00", "2025-04-10 10:00:00", WithScannerLogger(logger))

	out, summary, err := scan(t, s, sampleLog)
	require.NoError(t, err)

	assert.True(t, summary.StartsInsideWindow)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "the file starts during the search period")
	assert.Equal(t, "2025-04-10 09:00:00 INFO boot\n2025-04-10 09:30:00 INFO warmup done\n2025-04-10 10:00:00 WARN disk 80%\n", out)
}

func TestScanner_FirstLineEqualToStartIsNotAWarning(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	s := newTestScanner(t, "2025-04-10 09:00:00", "2025-04-10 09:00:00", WithScannerLogger(logger))

	out, summary, err := scan(t, s, sampleLog)
	require.NoError(t, err)

	assert.False(t, summary.StartsInsideWindow)
	assert.Empty(t, logs.String())
	assert.Equal(t, "2025-04-10 09:00:00 INFO boot\n", out)
}

func TestScanner_StopsAfterEnd(t *testing.T) {
	input := sampleLog + "2025-04-10 10:15:00 INFO out of order\n"
	s := newTestScanner(t, "2025-04-10 10:00:00", "2025-04-10 11:00:00")

	out, summary, err := scan(t, s, input)
	require.NoError(t, err)

	assert.Equal(t, "2025-04-10 10:00:00 WARN disk 80%\n2025-04-10 10:30:00 ERROR disk full\n2025-04-10 11:00:00 INFO recovered\n", out)
	assert.True(t, summary.StoppedAtEnd)
	assert.Equal(t, 6, summary.LinesRead)
	assert.Equal(t, 3, summary.LinesEmitted)
}

func TestScanner_StopsBeforeCorruptTail(t *testing.T) {
	input := "2025-04-10 10:00:00 a\n2025-04-10 12:00:00 b\nnot a timestamp\n"
	s := newTestScanner(t, "2025-04-10 10:00:00", "2025-04-10 11:00:00")

	out, _, err := scan(t, s, input)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-10 10:00:00 a\n", out)
}

func TestScanner_TimeOnlyMode(t *testing.T) {
	input := "09:59:59 before\n10:00:00 start\n11:30:00 something happened\n12:00:00 end\n12:00:01 after\n"
	s := newTestScanner(t, "10:00:00", "12:00:00")

	out, summary, err := scan(t, s, input)
	require.NoError(t, err)

	assert.Equal(t, "10:00:00 start\n11:30:00 something happened\n12:00:00 end\n", out)
	assert.Equal(t, "10:00:00", s.Window().Format(summary.First))
}

func TestScanner_InclusiveBoundaries(t *testing.T) {
	s := newTestScanner(t, "2025-04-10 10:00:00", "2025-04-10 12:00:00")

	out, _, err := scan(t, s, sampleLog)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "2025-04-10 10:00:00"))
	assert.True(t, strings.HasPrefix(lines[3], "2025-04-10 12:00:00"))
}

func TestScanner_NoMatchIsNotAnError(t *testing.T) {
	s := newTestScanner(t, "2025-04-11 00:00:00", "2025-04-12 00:00:00")

	out, summary, err := scan(t, s, sampleLog)
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.Equal(t, 7, summary.LinesRead)
	assert.Equal(t, 0, summary.LinesEmitted)
}

func TestScanner_WindowBetweenLines(t *testing.T) {
	s := newTestScanner(t, "2025-04-10 12:10:00", "2025-04-10 12:20:00")

	out, summary, err := scan(t, s, sampleLog)
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.True(t, summary.StoppedAtEnd)
}

func TestScanner_EmptySource(t *testing.T) {
	s := newTestScanner(t, "10:00:00", "12:00:00")

	out, summary, err := scan(t, s, "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 0, summary.LinesRead)
}

func TestScanner_MalformedLineAborts(t *testing.T) {
	input := "2025-04-10 09:00:00 ok\n2025-04-10 1x:00:00 broken\n2025-04-10 11:00:00 never read\n"
	s := newTestScanner(t, "2025-04-10 08:00:00", "2025-04-10 12:00:00")

	out, summary, err := scan(t, s, input)
	require.Error(t, err)

	assert.ErrorIs(t, err, timestamp.ErrInvalidField)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "hour")
	assert.Equal(t, "2025-04-10 09:00:00 ok\n", out)
	assert.Equal(t, 2, summary.LinesRead)
}

func TestScanner_ShortLineAborts(t *testing.T) {
	s := newTestScanner(t, "2025-04-10 08:00:00", "2025-04-10 12:00:00")

	_, _, err := scan(t, s, "2025-04-10 09:00:00 ok\n\n")
	assert.ErrorIs(t, err, timestamp.ErrTooShort)
}

func TestScanner_CRLFAndMissingTrailingNewline(t *testing.T) {
	s := newTestScanner(t, "10:00:00", "12:00:00")

	out, _, err := scan(t, s, "10:00:00 a\r\n11:00:00 b")
	require.NoError(t, err)
	assert.Equal(t, "10:00:00 a\n11:00:00 b\n", out)
}

func TestScanner_LineTooLong(t *testing.T) {
	s := newTestScanner(t, "10:00:00", "12:00:00", WithMaxLineBytes(32))

	_, _, err := scan(t, s, "10:00:00 "+strings.Repeat("x", 64)+"\n")
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestScanner_Idempotent(t *testing.T) {
	s := newTestScanner(t, "2025-04-10 09:30:00", "2025-04-10 12:00:00")

	first, _, err := scan(t, s, sampleLog)
	require.NoError(t, err)
	second, _, err := scan(t, s, sampleLog)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestScanner_WriteError(t *testing.T) {
	s := newTestScanner(t, "10:00:00", "12:00:00")

	_, err := s.Scan(strings.NewReader("10:00:00 a\n"), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

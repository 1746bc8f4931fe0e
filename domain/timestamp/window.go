package timestamp

import (
	"fmt"
	"unicode/utf8"
)

// Mode selects how line timestamps are read and compared.
type Mode int

// Mode values.
const (
	ModeTimeOnly Mode = iota
	ModeDateAndTime
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeTimeOnly {
		return "time only"
	}
	return "date and time"
}

// Window is an inclusive [start, end] search period whose boundaries share
// one mode.
type Window struct {
	mode  Mode
	start Boundary
	end   Boundary
}

// NewWindow builds a window from two boundaries. Both must be time-only, or
// both must carry a date.
func NewWindow(start, end Boundary) (Window, error) {
	startHasDate := start.Kind().HasDate()
	endHasDate := end.Kind().HasDate()

	switch {
	case !startHasDate && !endHasDate:
		return Window{mode: ModeTimeOnly, start: start, end: end}, nil
	case startHasDate && endHasDate:
		return Window{mode: ModeDateAndTime, start: start, end: end}, nil
	default:
		return Window{}, fmt.Errorf("period_start is a %s, period_end is a %s: %w", start.Kind(), end.Kind(), ErrMixedFormat)
	}
}

// ParseWindow checks, detects and combines the start and end tokens.
func ParseWindow(startToken, endToken string) (Window, error) {
	if utf8.RuneCountInString(startToken) < TimeWidth {
		return Window{}, fmt.Errorf("period_start: %w", ErrBoundaryTooShort)
	}
	if utf8.RuneCountInString(endToken) < TimeWidth {
		return Window{}, fmt.Errorf("period_end: %w", ErrBoundaryTooShort)
	}

	start, err := DetectBoundary(startToken)
	if err != nil {
		return Window{}, fmt.Errorf("period_start: %w", err)
	}
	end, err := DetectBoundary(endToken)
	if err != nil {
		return Window{}, fmt.Errorf("period_end: %w", err)
	}
	return NewWindow(start, end)
}

// Mode returns the comparison mode.
func (w Window) Mode() Mode { return w.mode }

// Start returns the start boundary.
func (w Window) Start() Boundary { return w.start }

// End returns the end boundary.
func (w Window) End() Boundary { return w.end }

// Parse reads the timestamp prefix of a log line in the window's mode.
// In time-only mode the returned value has a zero date, like the boundaries.
func (w Window) Parse(line string) (Datetime, error) {
	if w.mode == ModeTimeOnly {
		t, err := ParseTime(line)
		if err != nil {
			return Datetime{}, err
		}
		return NewDatetime(Date{}, t), nil
	}
	return ParseDatetime(line)
}

// CompareStart compares a line timestamp with the start boundary.
func (w Window) CompareStart(ts Datetime) Ordering {
	return ts.Compare(w.start.Datetime())
}

// CompareEnd compares a line timestamp with the end boundary.
func (w Window) CompareEnd(ts Datetime) Ordering {
	return ts.Compare(w.end.Datetime())
}

// Format renders a line timestamp the way the window reads it.
func (w Window) Format(ts Datetime) string {
	if w.mode == ModeTimeOnly {
		return ts.Time().String()
	}
	return ts.String()
}

// EndsAtMidnight reports whether the end boundary is a bare date. Such a
// boundary stops at 00:00:00 and excludes the rest of that day.
func (w Window) EndsAtMidnight() bool {
	return w.end.Kind() == KindDateOnly
}

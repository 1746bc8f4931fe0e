package timestamp

import (
	"fmt"
	"unicode/utf8"
)

// Kind identifies which parts of a boundary token were supplied.
type Kind int

// Kind values.
const (
	KindTimeOnly Kind = iota
	KindDateOnly
	KindFull
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTimeOnly:
		return "time"
	case KindDateOnly:
		return "date"
	case KindFull:
		return "datetime"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// HasDate reports whether the kind carries a date.
func (k Kind) HasDate() bool {
	return k == KindDateOnly || k == KindFull
}

// Boundary is one end of a search window. Parts that were not supplied are
// zero: a date-only boundary sits at 00:00:00 of its day.
type Boundary struct {
	kind Kind
	date Date
	time Time
}

// Kind returns which parts were supplied.
func (b Boundary) Kind() Kind { return b.kind }

// Datetime returns the boundary as a comparable value.
func (b Boundary) Datetime() Datetime {
	return NewDatetime(b.date, b.time)
}

// String renders only the supplied parts.
func (b Boundary) String() string {
	switch b.kind {
	case KindTimeOnly:
		return b.time.String()
	case KindDateOnly:
		return b.date.String()
	default:
		return b.Datetime().String()
	}
}

// DetectBoundary classifies a token by its length and parses it:
// 8 characters is HH:MM:SS, 10 is YYYY-MM-DD and 19 is YYYY-MM-DD HH:MM:SS.
func DetectBoundary(token string) (Boundary, error) {
	switch utf8.RuneCountInString(token) {
	case TimeWidth:
		t, err := ParseTime(token)
		if err != nil {
			return Boundary{}, err
		}
		return Boundary{kind: KindTimeOnly, time: t}, nil
	case DateWidth:
		d, err := ParseDate(token)
		if err != nil {
			return Boundary{}, err
		}
		return Boundary{kind: KindDateOnly, date: d}, nil
	case DatetimeWidth:
		dt, err := ParseDatetime(token)
		if err != nil {
			return Boundary{}, err
		}
		return Boundary{kind: KindFull, date: dt.Date(), time: dt.Time()}, nil
	default:
		return Boundary{}, fmt.Errorf("%q: %w", token, ErrInvalidSize)
	}
}

package timestamp

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Minimum widths of each fixed format.
const (
	TimeWidth     = 8  // HH:MM:SS
	DateWidth     = 10 // YYYY-MM-DD
	DatetimeWidth = 19 // YYYY-MM-DD HH:MM:SS
)

// datetimeTimeOffset is where the time starts inside a datetime. The
// character before it separates date and time and is not checked.
const datetimeTimeOffset = DateWidth + 1

// ParseTime reads a Time from the first 8 characters of s.
// Anything after them is ignored.
func ParseTime(s string) (Time, error) {
	if utf8.RuneCountInString(s) < TimeWidth {
		return Time{}, fmt.Errorf("invalid time format, length should contain at least %d chars: %w", TimeWidth, ErrTooShort)
	}
	hour, err := parseField("hour", s[0:2], 8)
	if err != nil {
		return Time{}, err
	}
	minute, err := parseField("minute", s[3:5], 8)
	if err != nil {
		return Time{}, err
	}
	second, err := parseField("second", s[6:8], 8)
	if err != nil {
		return Time{}, err
	}
	return NewTime(uint8(hour), uint8(minute), uint8(second)), nil
}

// ParseDate reads a Date from the first 10 characters of s.
func ParseDate(s string) (Date, error) {
	if utf8.RuneCountInString(s) < DateWidth {
		return Date{}, fmt.Errorf("invalid date format, length should contain at least %d chars: %w", DateWidth, ErrTooShort)
	}
	year, err := parseField("year", s[0:4], 16)
	if err != nil {
		return Date{}, err
	}
	month, err := parseField("month", s[5:7], 8)
	if err != nil {
		return Date{}, err
	}
	day, err := parseField("day", s[8:10], 8)
	if err != nil {
		return Date{}, err
	}
	return NewDate(uint16(year), uint8(month), uint8(day)), nil
}

// ParseDatetime reads a Datetime from the first 19 characters of s: a date
// in [0,10) and a time in [11,19).
func ParseDatetime(s string) (Datetime, error) {
	if utf8.RuneCountInString(s) < DatetimeWidth {
		return Datetime{}, fmt.Errorf("invalid datetime format, length should contain at least %d chars: %w", DatetimeWidth, ErrTooShort)
	}
	date, err := ParseDate(s[:DateWidth])
	if err != nil {
		return Datetime{}, err
	}
	clock, err := ParseTime(s[datetimeTimeOffset:DatetimeWidth])
	if err != nil {
		return Datetime{}, err
	}
	return NewDatetime(date, clock), nil
}

// parseField parses an unsigned decimal subfield that must fit in bits.
func parseField(name, raw string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		return 0, &ParseError{Field: name, Value: raw}
	}
	return v, nil
}

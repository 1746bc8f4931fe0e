package timestamp

import "fmt"

// Time is a time of day as written in a log prefix. The hour is not
// limited to 0-23.
type Time struct {
	hour   uint8
	minute uint8
	second uint8
}

// NewTime creates a Time.
func NewTime(hour, minute, second uint8) Time {
	return Time{hour: hour, minute: minute, second: second}
}

// Hour returns the hour.
func (t Time) Hour() uint8 { return t.hour }

// Minute returns the minute.
func (t Time) Minute() uint8 { return t.minute }

// Second returns the second.
func (t Time) Second() uint8 { return t.second }

// Compare orders times by hour, then minute, then second.
func (t Time) Compare(o Time) Ordering {
	if c := compareUint(t.hour, o.hour); c != Equal {
		return c
	}
	if c := compareUint(t.minute, o.minute); c != Equal {
		return c
	}
	return compareUint(t.second, o.second)
}

// String renders the time as HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

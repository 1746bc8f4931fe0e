package timestamp

import "fmt"

// Date is a calendar date as written in a log prefix. Months and days are
// not validated: 2025-13-40 is a distinct value ordered after 2025-12-31.
type Date struct {
	year  uint16
	month uint8
	day   uint8
}

// NewDate creates a Date.
func NewDate(year uint16, month, day uint8) Date {
	return Date{year: year, month: month, day: day}
}

// Year returns the year.
func (d Date) Year() uint16 { return d.year }

// Month returns the month.
func (d Date) Month() uint8 { return d.month }

// Day returns the day of the month.
func (d Date) Day() uint8 { return d.day }

// Compare orders dates by year, then month, then day.
func (d Date) Compare(o Date) Ordering {
	if c := compareUint(d.year, o.year); c != Equal {
		return c
	}
	if c := compareUint(d.month, o.month); c != Equal {
		return c
	}
	return compareUint(d.day, o.day)
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

package timestamp

// Datetime pairs a Date with a Time.
type Datetime struct {
	date Date
	time Time
}

// NewDatetime creates a Datetime.
func NewDatetime(date Date, time Time) Datetime {
	return Datetime{date: date, time: time}
}

// Date returns the date part.
func (d Datetime) Date() Date { return d.date }

// Time returns the time part.
func (d Datetime) Time() Time { return d.time }

// Compare orders by date, then by time.
func (d Datetime) Compare(o Datetime) Ordering {
	if c := d.date.Compare(o.date); c != Equal {
		return c
	}
	return d.time.Compare(o.time)
}

// String renders the value as YYYY-MM-DDTHH:MM:SS.
func (d Datetime) String() string {
	return d.date.String() + "T" + d.time.String()
}

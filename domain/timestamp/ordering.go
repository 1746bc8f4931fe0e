// Package timestamp provides the fixed-width date and time values found at
// the start of log lines, their chronological ordering, and the search
// window built from two boundary tokens.
package timestamp

// Ordering is the result of comparing two values.
type Ordering int

// Ordering values.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Reverse returns the ordering seen from the other operand.
func (o Ordering) Reverse() Ordering {
	return -o
}

// String returns the name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

func compareUint[T uint8 | uint16](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

package booking

import (
	"fmt"
	"time"
)

// Stay is a half-open date interval [CheckIn, CheckOut). Both bounds are
// calendar dates at UTC midnight; no time-of-day component is meaningful.
// The half-open convention makes back-to-back stays legal: a checkout on
// day D and a check-in on day D never conflict.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewStay parses two ISO-8601 calendar dates (YYYY-MM-DD) into a Stay.
// The check-in must be strictly before the check-out; a same-day
// check-in/check-out is not a valid stay.
func NewStay(checkIn, checkOut string) (Stay, error) {
	in, err := time.Parse(time.DateOnly, checkIn)

	if err != nil {
		return Stay{}, fmt.Errorf("%w: check-in %q", ErrInvalidDateFormat, checkIn)
	}

	out, err := time.Parse(time.DateOnly, checkOut)

	if err != nil {
		return Stay{}, fmt.Errorf("%w: check-out %q", ErrInvalidDateFormat, checkOut)
	}

	if !in.Before(out) {
		return Stay{}, fmt.Errorf("%w: %v to %v", ErrInvalidRange, checkIn, checkOut)
	}

	return Stay{CheckIn: in, CheckOut: out}, nil
}

// Overlaps reports whether two half-open intervals share at least one night:
// [s1,e1) overlaps [s2,e2) iff s1 < e2 && s2 < e1. Intervals that only touch
// at a boundary date do not overlap.
func (s Stay) Overlaps(other Stay) bool {
	return s.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(s.CheckOut)
}

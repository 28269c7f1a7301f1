package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidDateFormat = errors.New("invalid date format")

var ErrInvalidRange = errors.New("check-in must be before check-out")

// ErrDateConflict is an expected, user-facing outcome: the requested range
// overlaps an existing active booking. Callers must be able to tell it apart
// from the input errors above.
var ErrDateConflict = errors.New("dates conflict with an existing booking")

var ErrInvalidStatus = errors.New("invalid booking status")

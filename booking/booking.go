package booking

import "time"

// Status is the closed set of booking lifecycle states. Only pending and
// confirmed bookings block overlapping reservations.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

// ParseStatus validates a status string coming from the outside.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusRejected:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// Active reports whether the booking still blocks its date range.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Booking struct {
	ID              string    `json:"id"`
	AccommodationID string    `json:"accommodationId"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail"`
	GuestPhone      string    `json:"guestPhone"`
	GuestCount      int       `json:"guestCount"`
	SpecialRequests string    `json:"specialRequests"`
	TotalAmount     float64   `json:"totalAmount"`
	Status          Status    `json:"status"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
}

// Stay returns the booking's date range as a half-open interval.
func (b Booking) Stay() Stay {
	return Stay{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// GuestDetails is the descriptive payload attached to a reservation. The
// engine carries it through unchanged; business validation of these fields
// belongs to the caller.
type GuestDetails struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	GuestCount      int     `json:"guestCount"`
	SpecialRequests string  `json:"specialRequests"`
	TotalAmount     float64 `json:"totalAmount"`
}

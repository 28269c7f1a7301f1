package booking

import (
	"context"
	"fmt"
	"sync"
)

type BookingRepository interface {
	GetActiveBookings(ctx context.Context, accommodationID string) ([]Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsPerGuestEmail(ctx context.Context, email string) ([]Booking, error)
	InsertBooking(ctx context.Context, booking Booking) (Booking, error)
	SetBookingStatus(ctx context.Context, id string, status Status) error
}

// Service is the availability engine: it answers availability queries and
// performs the atomic check-then-insert that keeps an accommodation free of
// double bookings. All booking mutation goes through here.
type Service struct {
	repo BookingRepository

	// mu guards locks; each accommodation gets its own mutex so that
	// reservations for different accommodations never serialize on each
	// other.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo BookingRepository) *Service {
	return &Service{repo: repo, locks: map[string]*sync.Mutex{}}
}

func (s *Service) lockFor(accommodationID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[accommodationID]

	if !ok {
		lock = &sync.Mutex{}
		s.locks[accommodationID] = lock
	}

	return lock
}

// IsAvailable reports whether the requested range is free of active bookings
// for the accommodation. Unparseable or inverted dates fail with
// ErrInvalidDateFormat/ErrInvalidRange rather than reading as "unavailable".
// This is a plain read; only Reserve guarantees the answer still holds at
// insert time.
func (s *Service) IsAvailable(ctx context.Context, accommodationID, checkIn, checkOut string) (bool, error) {
	stay, err := NewStay(checkIn, checkOut)

	if err != nil {
		return false, err
	}

	return s.available(ctx, accommodationID, stay)
}

func (s *Service) available(ctx context.Context, accommodationID string, stay Stay) (bool, error) {
	bookings, err := s.repo.GetActiveBookings(ctx, accommodationID)

	if err != nil {
		return false, fmt.Errorf("failed to check availability: %w", err)
	}

	for _, b := range bookings {
		if stay.Overlaps(b.Stay()) {
			return false, nil
		}
	}

	return true, nil
}

// Reserve creates a pending booking for the range, or fails with
// ErrDateConflict without touching the store. The availability check and the
// insert run under the accommodation's lock so two racing requests for
// overlapping ranges can never both succeed.
func (s *Service) Reserve(ctx context.Context, accommodationID, checkIn, checkOut string, guest GuestDetails) (Booking, error) {
	stay, err := NewStay(checkIn, checkOut)

	if err != nil {
		return Booking{}, err
	}

	lock := s.lockFor(accommodationID)
	lock.Lock()
	defer lock.Unlock()

	available, err := s.available(ctx, accommodationID, stay)

	if err != nil {
		return Booking{}, err
	}

	if !available {
		return Booking{}, ErrDateConflict
	}

	return s.repo.InsertBooking(ctx, Booking{
		AccommodationID: accommodationID,
		GuestName:       guest.Name,
		GuestEmail:      guest.Email,
		GuestPhone:      guest.Phone,
		GuestCount:      guest.GuestCount,
		SpecialRequests: guest.SpecialRequests,
		TotalAmount:     guest.TotalAmount,
		Status:          StatusPending,
		CheckIn:         stay.CheckIn,
		CheckOut:        stay.CheckOut,
	})
}

// SetStatus moves a booking to any of the four statuses. Cancelling or
// rejecting frees the range immediately since active-booking reads filter by
// status. The update runs under the accommodation's lock so it cannot
// interleave with a Reserve on the same accommodation.
func (s *Service) SetStatus(ctx context.Context, id string, status string) (Booking, error) {
	parsed, err := ParseStatus(status)

	if err != nil {
		return Booking{}, err
	}

	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	lock := s.lockFor(booking.AccommodationID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.SetBookingStatus(ctx, id, parsed); err != nil {
		return Booking{}, err
	}

	booking.Status = parsed

	return booking, nil
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *Service) FindActiveBookings(ctx context.Context, accommodationID string) ([]Booking, error) {
	return s.repo.GetActiveBookings(ctx, accommodationID)
}

func (s *Service) FindBookingsPerGuestEmail(ctx context.Context, email string) ([]Booking, error) {
	return s.repo.GetBookingsPerGuestEmail(ctx, email)
}

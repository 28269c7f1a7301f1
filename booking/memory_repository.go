package booking

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is a map-backed BookingRepository for tests and local
// runs without a database. The availability engine's atomicity comes from
// the Service's per-accommodation lock, not from this store.
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]Booking
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bookings: map[string]Booking{}}
}

func (r *MemoryRepository) GetActiveBookings(_ context.Context, accommodationID string) ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []Booking

	for _, b := range r.bookings {
		if b.AccommodationID == accommodationID && b.Status.Active() {
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}

func (r *MemoryRepository) GetBookingByID(_ context.Context, id string) (Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]

	if !ok {
		return Booking{}, ErrBookingNotFound
	}

	return booking, nil
}

func (r *MemoryRepository) GetBookingsPerGuestEmail(_ context.Context, email string) ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []Booking

	for _, b := range r.bookings {
		if b.GuestEmail == email {
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}

func (r *MemoryRepository) InsertBooking(_ context.Context, booking Booking) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = uuid.NewString()
	booking.Status = StatusPending
	r.bookings[booking.ID] = booking

	return booking, nil
}

func (r *MemoryRepository) SetBookingStatus(_ context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]

	if !ok {
		return ErrBookingNotFound
	}

	booking.Status = status
	r.bookings[id] = booking

	return nil
}

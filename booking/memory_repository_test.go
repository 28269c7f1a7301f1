package booking_test

import (
	"context"
	"testing"

	bk "github.com/lagunacove/resort-booking-backend/booking"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("insert assigns id and pending status", func(t *testing.T) {
		repo := bk.NewMemoryRepository()

		inserted, err := repo.InsertBooking(ctx, bk.Booking{
			AccommodationID: "room-1",
			GuestEmail:      "jamie@example.com",
			CheckIn:         day("2025-12-01"),
			CheckOut:        day("2025-12-05"),
		})

		require.Nil(t, err)
		require.NotEmpty(t, inserted.ID)
		require.Equal(t, bk.StatusPending, inserted.Status)

		got, err := repo.GetBookingByID(ctx, inserted.ID)
		require.Nil(t, err)
		require.Equal(t, inserted, got)
	})

	t.Run("get unknown id", func(t *testing.T) {
		repo := bk.NewMemoryRepository()

		_, err := repo.GetBookingByID(ctx, "missing")
		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})

	t.Run("set status on unknown id", func(t *testing.T) {
		repo := bk.NewMemoryRepository()

		err := repo.SetBookingStatus(ctx, "missing", bk.StatusConfirmed)
		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})

	t.Run("active bookings exclude cancelled and rejected", func(t *testing.T) {
		repo := bk.NewMemoryRepository()

		kept, err := repo.InsertBooking(ctx, bk.Booking{AccommodationID: "room-1", CheckIn: day("2025-12-01"), CheckOut: day("2025-12-05")})
		require.Nil(t, err)

		dropped, err := repo.InsertBooking(ctx, bk.Booking{AccommodationID: "room-1", CheckIn: day("2025-12-10"), CheckOut: day("2025-12-15")})
		require.Nil(t, err)

		require.Nil(t, repo.SetBookingStatus(ctx, dropped.ID, bk.StatusCancelled))

		active, err := repo.GetActiveBookings(ctx, "room-1")
		require.Nil(t, err)
		require.Equal(t, 1, len(active))
		require.Equal(t, kept.ID, active[0].ID)
	})

	t.Run("bookings per guest email", func(t *testing.T) {
		repo := bk.NewMemoryRepository()

		_, err := repo.InsertBooking(ctx, bk.Booking{AccommodationID: "room-1", GuestEmail: "jamie@example.com", CheckIn: day("2025-12-01"), CheckOut: day("2025-12-05")})
		require.Nil(t, err)

		_, err = repo.InsertBooking(ctx, bk.Booking{AccommodationID: "room-2", GuestEmail: "alex@example.com", CheckIn: day("2025-12-01"), CheckOut: day("2025-12-05")})
		require.Nil(t, err)

		bookings, err := repo.GetBookingsPerGuestEmail(ctx, "jamie@example.com")
		require.Nil(t, err)
		require.Equal(t, 1, len(bookings))
		require.Equal(t, "jamie@example.com", bookings[0].GuestEmail)
	})
}

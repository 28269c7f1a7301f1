package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// exclusionViolation is raised by the no_double_booking constraint when a
// second service instance slips an overlapping insert past our in-process
// lock.
const exclusionViolation = "23P01"

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) GetActiveBookings(ctx context.Context, accommodationID string) ([]Booking, error) {
	sql := `SELECT id, "accommodationId", "guestName", "guestEmail", "guestPhone", "guestCount", "specialRequests", "totalAmount", status, "checkIn", "checkOut"
            FROM "resort-booking".booking
            WHERE "accommodationId"=$1 AND status IN ('pending', 'confirmed')
            ORDER BY "checkIn";
        `

	rows, err := r.conn.Query(ctx, sql, accommodationID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch active bookings for accommodation '%v': %w", accommodationID, err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `
			SELECT id, "accommodationId", "guestName", "guestEmail", "guestPhone", "guestCount", "specialRequests", "totalAmount", status, "checkIn", "checkOut"
			FROM "resort-booking".booking
			WHERE id=$1;
		`

	var booking Booking
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&booking.ID,
		&booking.AccommodationID,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.GuestCount,
		&booking.SpecialRequests,
		&booking.TotalAmount,
		&booking.Status,
		&booking.CheckIn,
		&booking.CheckOut,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) GetBookingsPerGuestEmail(ctx context.Context, email string) ([]Booking, error) {
	sql := `
            SELECT id, "accommodationId", "guestName", "guestEmail", "guestPhone", "guestCount", "specialRequests", "totalAmount", status, "checkIn", "checkOut"
            FROM "resort-booking".booking
            WHERE "guestEmail"=$1
            ORDER BY "checkIn";
        `

	rows, err := r.conn.Query(ctx, sql, email)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for guest '%v': %w", email, err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	sql := `
			INSERT INTO "resort-booking".booking(
			"accommodationId", "guestName", "guestEmail", "guestPhone", "guestCount", "specialRequests", "totalAmount", status, "checkIn", "checkOut")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;
		`

	err := r.conn.QueryRow(ctx, sql,
		booking.AccommodationID,
		booking.GuestName,
		booking.GuestEmail,
		booking.GuestPhone,
		booking.GuestCount,
		booking.SpecialRequests,
		booking.TotalAmount,
		StatusPending,
		booking.CheckIn,
		booking.CheckOut,
	).Scan(&booking.ID)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
		return Booking{}, ErrDateConflict
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	booking.Status = StatusPending

	return booking, nil
}

func (r *Repository) SetBookingStatus(ctx context.Context, id string, status Status) error {
	sql := `
            UPDATE "resort-booking".booking
            SET status=$1
            WHERE id=$2;
        `

	tag, err := r.conn.Exec(ctx, sql, status, id)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func scanBookings(rows pgx.Rows) ([]Booking, error) {
	var bookings []Booking

	for rows.Next() {
		var booking Booking
		err := rows.Scan(
			&booking.ID,
			&booking.AccommodationID,
			&booking.GuestName,
			&booking.GuestEmail,
			&booking.GuestPhone,
			&booking.GuestCount,
			&booking.SpecialRequests,
			&booking.TotalAmount,
			&booking.Status,
			&booking.CheckIn,
			&booking.CheckOut,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

package accommodation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) GetAccommodations(ctx context.Context) ([]Accommodation, error) {
	sql := `SELECT id, name, type, description, capacity, "pricePerNight", active
            FROM "resort-booking".accommodation
            WHERE active
            ORDER BY name;
        `

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch accommodations: %w", err)
	}

	defer rows.Close()

	var accommodations []Accommodation

	for rows.Next() {
		var a Accommodation
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Type,
			&a.Description,
			&a.Capacity,
			&a.PricePerNight,
			&a.Active,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning accommodation row: %w", err)
		}

		accommodations = append(accommodations, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accommodation rows: %w", err)
	}

	return accommodations, nil
}

func (r *Repository) GetAccommodationByID(ctx context.Context, id string) (Accommodation, error) {
	sql := `
			SELECT id, name, type, description, capacity, "pricePerNight", active
			FROM "resort-booking".accommodation
			WHERE id=$1;
		`

	var a Accommodation
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.Description,
		&a.Capacity,
		&a.PricePerNight,
		&a.Active,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Accommodation{}, ErrAccommodationNotFound
	}

	if err != nil {
		return Accommodation{}, fmt.Errorf("failed to fetch accommodation with id %v: %w", id, err)
	}

	return a, nil
}

func (r *Repository) InsertAccommodation(ctx context.Context, a Accommodation) (Accommodation, error) {
	sql := `
			INSERT INTO "resort-booking".accommodation(name, type, description, capacity, "pricePerNight", active)
			VALUES ($1, $2, $3, $4, $5, true)
			RETURNING id;
		`

	err := r.conn.QueryRow(ctx, sql,
		a.Name,
		a.Type,
		a.Description,
		a.Capacity,
		a.PricePerNight,
	).Scan(&a.ID)

	if err != nil {
		return Accommodation{}, fmt.Errorf("failed to insert accommodation: %w", err)
	}

	a.Active = true

	return a, nil
}

func (r *Repository) UpdateAccommodation(ctx context.Context, a Accommodation) error {
	sql := `
			UPDATE "resort-booking".accommodation
			SET
				name=$1,
				type=$2,
				description=$3,
				capacity=$4,
				"pricePerNight"=$5
			WHERE id=$6;
		`

	tag, err := r.conn.Exec(ctx, sql,
		a.Name,
		a.Type,
		a.Description,
		a.Capacity,
		a.PricePerNight,
		a.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update accommodation: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAccommodationNotFound
	}

	return nil
}

func (r *Repository) DeactivateAccommodation(ctx context.Context, id string) error {
	sql := `
            UPDATE "resort-booking".accommodation
            SET active=false
            WHERE id=$1;
        `

	tag, err := r.conn.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to deactivate accommodation '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAccommodationNotFound
	}

	return nil
}

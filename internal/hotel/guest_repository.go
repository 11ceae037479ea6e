package hotel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GuestRepository defines the interface for guest stay persistence.
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest) error
	GetByID(ctx context.Context, id string) (*Guest, error)
	List(ctx context.Context) ([]Guest, error)
	Update(ctx context.Context, guest *Guest) error
	Delete(ctx context.Context, id string) error
}

// SQLiteGuestRepository implements GuestRepository using SQLite.
type SQLiteGuestRepository struct {
	db *sql.DB
}

// NewGuestRepository creates a new SQLite-backed guest repository.
func NewGuestRepository(db *sql.DB) *SQLiteGuestRepository {
	return &SQLiteGuestRepository{db: db}
}

// Create inserts a new guest stay. The ID is generated if empty.
func (r *SQLiteGuestRepository) Create(ctx context.Context, guest *Guest) error {
	if guest.ID == "" {
		guest.ID = "gst-" + uuid.NewString()[:8]
	}

	now := time.Now().UTC().Format(time.RFC3339)
	guest.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled
	guest.UpdatedAt = guest.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO guests (id, name, room_number, check_in_date, check_out_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		guest.ID, guest.Name, guest.RoomNumber, guest.CheckInDate, guest.CheckOutDate, now, now,
	)
	if err != nil {
		return fmt.Errorf("creating guest: %w", err)
	}

	return nil
}

// GetByID retrieves a guest by their ID.
func (r *SQLiteGuestRepository) GetByID(ctx context.Context, id string) (*Guest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, room_number, check_in_date, check_out_date, created_at, updated_at
		 FROM guests WHERE id = ?`,
		id,
	)
	return scanGuest(row)
}

// List returns all guests ordered by check-in date.
func (r *SQLiteGuestRepository) List(ctx context.Context) ([]Guest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, room_number, check_in_date, check_out_date, created_at, updated_at
		 FROM guests ORDER BY check_in_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing guests: %w", err)
	}
	defer rows.Close()

	var guests []Guest
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, *guest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating guests: %w", err)
	}

	if guests == nil {
		guests = []Guest{}
	}
	return guests, nil
}

// Update rewrites a guest's details. A missing ID maps to ErrGuestNotFound.
func (r *SQLiteGuestRepository) Update(ctx context.Context, guest *Guest) error {
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := r.db.ExecContext(ctx,
		`UPDATE guests SET name = ?, room_number = ?, check_in_date = ?, check_out_date = ?, updated_at = ?
		 WHERE id = ?`,
		guest.Name, guest.RoomNumber, guest.CheckInDate, guest.CheckOutDate, now, guest.ID,
	)
	if err != nil {
		return fmt.Errorf("updating guest: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating guest: %w", err)
	}
	if affected == 0 {
		return ErrGuestNotFound
	}

	guest.UpdatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled
	return nil
}

// Delete removes a guest by their ID. A missing ID maps to ErrGuestNotFound.
func (r *SQLiteGuestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM guests WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting guest: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting guest: %w", err)
	}
	if affected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

// scanGuest scans a guest from a row.
func scanGuest(s scanner) (*Guest, error) {
	var guest Guest
	var createdAt, updatedAt string

	err := s.Scan(&guest.ID, &guest.Name, &guest.RoomNumber,
		&guest.CheckInDate, &guest.CheckOutDate, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("scanning guest: %w", err)
	}

	guest.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	guest.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // format is controlled

	return &guest, nil
}

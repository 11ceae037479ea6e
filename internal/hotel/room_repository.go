package hotel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoomRepository defines the interface for room inventory persistence.
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context) ([]Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id string) error
}

// SQLiteRoomRepository implements RoomRepository using SQLite.
type SQLiteRoomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new SQLite-backed room repository.
func NewRoomRepository(db *sql.DB) *SQLiteRoomRepository {
	return &SQLiteRoomRepository{db: db}
}

// Create inserts a new room. The ID is generated if empty. A room
// number collision maps to ErrRoomNumberExists.
func (r *SQLiteRoomRepository) Create(ctx context.Context, room *Room) error {
	if room.ID == "" {
		room.ID = "room-" + uuid.NewString()[:8]
	}

	now := time.Now().UTC().Format(time.RFC3339)
	room.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled
	room.UpdatedAt = room.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rooms (id, number, type, price, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		room.ID, room.Number, room.Type, room.Price, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrRoomNumberExists
		}
		return fmt.Errorf("creating room: %w", err)
	}

	return nil
}

// GetByID retrieves a room by its ID.
func (r *SQLiteRoomRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, number, type, price, created_at, updated_at FROM rooms WHERE id = ?",
		id,
	)
	return scanRoom(row)
}

// List returns all rooms ordered by room number.
func (r *SQLiteRoomRepository) List(ctx context.Context) ([]Room, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, number, type, price, created_at, updated_at FROM rooms ORDER BY number ASC")
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rooms: %w", err)
	}

	if rooms == nil {
		rooms = []Room{}
	}
	return rooms, nil
}

// Update rewrites a room's number, type and price. A missing ID maps
// to ErrRoomNotFound; a number collision to ErrRoomNumberExists.
func (r *SQLiteRoomRepository) Update(ctx context.Context, room *Room) error {
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET number = ?, type = ?, price = ?, updated_at = ?
		 WHERE id = ?`,
		room.Number, room.Type, room.Price, now, room.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrRoomNumberExists
		}
		return fmt.Errorf("updating room: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating room: %w", err)
	}
	if affected == 0 {
		return ErrRoomNotFound
	}

	room.UpdatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled
	return nil
}

// Delete removes a room by its ID. A missing ID maps to ErrRoomNotFound.
func (r *SQLiteRoomRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}
	if affected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// scanner is an interface for sql.Row and sql.Rows Scan methods.
type scanner interface {
	Scan(dest ...any) error
}

// scanRoom scans a room from a row.
func scanRoom(s scanner) (*Room, error) {
	var room Room
	var createdAt, updatedAt string

	err := s.Scan(&room.ID, &room.Number, &room.Type, &room.Price, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("scanning room: %w", err)
	}

	room.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	room.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // format is controlled

	return &room, nil
}

// isUniqueViolation checks if a SQLite error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "unique constraint"))
}

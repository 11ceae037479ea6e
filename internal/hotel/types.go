package hotel

import (
	"errors"
	"time"
)

// Room is a bookable unit of inventory. Number is the human-facing
// identifier (kept as text so "101A" works) and is unique across the
// hotel.
type Room struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Type      string    `json:"type"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Guest is a registered stay. RoomNumber references a room by its
// human-facing number rather than its ID; the original booking sheet
// worked that way and the API keeps the convention.
type Guest struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RoomNumber   string    `json:"roomNumber"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

var (
	// ErrRoomNotFound is returned when no room matches the given ID.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNumberExists is returned when a room number collides with
	// an existing room.
	ErrRoomNumberExists = errors.New("room number already exists")

	// ErrGuestNotFound is returned when no guest matches the given ID.
	ErrGuestNotFound = errors.New("guest not found")
)

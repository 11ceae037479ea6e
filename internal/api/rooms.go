package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rowanvale/innkeeper/internal/hotel"
)

// roomRequest is the request body for creating or updating a room.
type roomRequest struct {
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
}

// handleListRooms returns all rooms.
func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.rooms.List(r.Context())
	if err != nil {
		s.logger.Error("list rooms failed", "error", err)
		writeInternalError(w, "failed to list rooms")
		return
	}

	writeJSON(w, http.StatusOK, rooms)
}

// handleGetRoom returns a single room by ID.
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	room, err := s.rooms.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, hotel.ErrRoomNotFound) {
			writeNotFound(w, "room not found")
			return
		}
		s.logger.Error("get room failed", "error", err)
		writeInternalError(w, "failed to get room")
		return
	}

	writeJSON(w, http.StatusOK, room)
}

// handleCreateRoom adds a room to the inventory.
//
// A duplicate room number reports 400, matching the longstanding client
// contract for this endpoint.
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Number == "" || req.Type == "" {
		writeBadRequest(w, "number and type are required")
		return
	}
	if req.Price < 0 {
		writeBadRequest(w, "price must not be negative")
		return
	}

	room := &hotel.Room{
		Number: req.Number,
		Type:   req.Type,
		Price:  req.Price,
	}

	if err := s.rooms.Create(r.Context(), room); err != nil {
		if errors.Is(err, hotel.ErrRoomNumberExists) {
			writeBadRequest(w, "room number already exists")
			return
		}
		s.logger.Error("create room failed", "error", err)
		writeInternalError(w, "failed to create room")
		return
	}

	s.logger.Info("room created", "room_id", room.ID, "number", room.Number)

	writeJSON(w, http.StatusCreated, room)
}

// handleUpdateRoom rewrites a room's details.
func (s *Server) handleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req roomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Number == "" || req.Type == "" {
		writeBadRequest(w, "number and type are required")
		return
	}
	if req.Price < 0 {
		writeBadRequest(w, "price must not be negative")
		return
	}

	room := &hotel.Room{
		ID:     id,
		Number: req.Number,
		Type:   req.Type,
		Price:  req.Price,
	}

	if err := s.rooms.Update(r.Context(), room); err != nil {
		switch {
		case errors.Is(err, hotel.ErrRoomNotFound):
			writeNotFound(w, "room not found")
		case errors.Is(err, hotel.ErrRoomNumberExists):
			writeBadRequest(w, "room number already exists")
		default:
			s.logger.Error("update room failed", "error", err)
			writeInternalError(w, "failed to update room")
		}
		return
	}

	s.logger.Info("room updated", "room_id", id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "room updated"})
}

// handleDeleteRoom removes a room from the inventory.
func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.rooms.Delete(r.Context(), id); err != nil {
		if errors.Is(err, hotel.ErrRoomNotFound) {
			writeNotFound(w, "room not found")
			return
		}
		s.logger.Error("delete room failed", "error", err)
		writeInternalError(w, "failed to delete room")
		return
	}

	s.logger.Info("room deleted", "room_id", id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "room deleted"})
}

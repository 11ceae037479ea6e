package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rowanvale/innkeeper/internal/hotel"
)

// guestRequest is the request body for creating or updating a guest.
// Wire names are camelCase, matching the original booking clients.
type guestRequest struct {
	Name         string `json:"name"`
	RoomNumber   string `json:"roomNumber"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// handleListGuests returns all guests.
func (s *Server) handleListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := s.guests.List(r.Context())
	if err != nil {
		s.logger.Error("list guests failed", "error", err)
		writeInternalError(w, "failed to list guests")
		return
	}

	writeJSON(w, http.StatusOK, guests)
}

// handleGetGuest returns a single guest by ID.
func (s *Server) handleGetGuest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	guest, err := s.guests.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, hotel.ErrGuestNotFound) {
			writeNotFound(w, "guest not found")
			return
		}
		s.logger.Error("get guest failed", "error", err)
		writeInternalError(w, "failed to get guest")
		return
	}

	writeJSON(w, http.StatusOK, guest)
}

// handleCreateGuest registers a guest stay.
func (s *Server) handleCreateGuest(w http.ResponseWriter, r *http.Request) {
	var req guestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Name == "" || req.RoomNumber == "" || req.CheckInDate == "" || req.CheckOutDate == "" {
		writeBadRequest(w, "name, roomNumber, checkInDate and checkOutDate are required")
		return
	}

	guest := &hotel.Guest{
		Name:         req.Name,
		RoomNumber:   req.RoomNumber,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
	}

	if err := s.guests.Create(r.Context(), guest); err != nil {
		s.logger.Error("create guest failed", "error", err)
		writeInternalError(w, "failed to create guest")
		return
	}

	s.logger.Info("guest created", "guest_id", guest.ID, "room_number", guest.RoomNumber)

	writeJSON(w, http.StatusCreated, guest)
}

// handleUpdateGuest rewrites a guest's details.
func (s *Server) handleUpdateGuest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req guestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Name == "" || req.RoomNumber == "" || req.CheckInDate == "" || req.CheckOutDate == "" {
		writeBadRequest(w, "name, roomNumber, checkInDate and checkOutDate are required")
		return
	}

	guest := &hotel.Guest{
		ID:           id,
		Name:         req.Name,
		RoomNumber:   req.RoomNumber,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
	}

	if err := s.guests.Update(r.Context(), guest); err != nil {
		if errors.Is(err, hotel.ErrGuestNotFound) {
			writeNotFound(w, "guest not found")
			return
		}
		s.logger.Error("update guest failed", "error", err)
		writeInternalError(w, "failed to update guest")
		return
	}

	s.logger.Info("guest updated", "guest_id", id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "guest updated"})
}

// handleDeleteGuest removes a guest stay.
func (s *Server) handleDeleteGuest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.guests.Delete(r.Context(), id); err != nil {
		if errors.Is(err, hotel.ErrGuestNotFound) {
			writeNotFound(w, "guest not found")
			return
		}
		s.logger.Error("delete guest failed", "error", err)
		writeInternalError(w, "failed to delete guest")
		return
	}

	s.logger.Info("guest deleted", "guest_id", id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "guest deleted"})
}

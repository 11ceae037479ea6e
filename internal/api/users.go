package api

import (
	"net/http"
)

// handleListUsers returns all user accounts. Password hashes are
// excluded by the User type's JSON encoding.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error("list users failed", "error", err)
		writeInternalError(w, "failed to list users")
		return
	}

	claims := claimsFromContext(r.Context())
	s.logger.Info("users listed", "count", len(users), "requested_by", claims.Subject)

	writeJSON(w, http.StatusOK, users)
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rowanvale/innkeeper/internal/auth"
)

// registerRequest is the request body for POST /register.
type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginRequest is the request body for POST /login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the response body for POST /login.
type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// handleRegister creates a new user account.
//
// A duplicate username reports 400, matching the longstanding client
// contract for this endpoint.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeBadRequest(w, "username and password are required")
		return
	}

	if !auth.IsValidUsername(req.Username) {
		writeBadRequest(w, "username must be 1-64 characters of letters, digits, dots, underscores or hyphens")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hash password failed", "error", err)
		writeInternalError(w, "failed to register user")
		return
	}

	user := &auth.User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := s.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, auth.ErrUsernameExists) {
			writeBadRequest(w, "username already exists")
			return
		}
		s.logger.Error("create user failed", "error", err)
		writeInternalError(w, "failed to register user")
		return
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	writeJSON(w, http.StatusCreated, user)
}

// handleLogin authenticates a user and returns a signed bearer token.
//
// An unknown username and a wrong password produce the same response;
// the password check still runs against a throwaway hash when the user
// does not exist so the two paths cost the same.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeBadRequest(w, "username and password are required")
		return
	}

	user, err := s.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			auth.VerifyPassword(req.Password, dummyHash)
			writeUnauthorized(w, "invalid credentials")
			return
		}
		s.logger.Error("get user for login failed", "error", err)
		writeInternalError(w, "failed to log in")
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		writeUnauthorized(w, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.Username, []byte(s.secCfg.JWT.Secret), time.Now())
	if err != nil {
		s.logger.Error("generate token failed", "error", err)
		writeInternalError(w, "failed to log in")
		return
	}

	s.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresIn: int(auth.TokenTTL.Seconds()),
	})
}

// dummyHash keeps login timing uniform when the username does not exist.
// Hashed from a random throwaway input; it matches no real password.
const dummyHash = "$argon2id$v=19$m=65536,t=3,p=1$" +
	"c2FsdHNhbHRzYWx0c2FsdA$Wt1XpC0eL0wbVvM1YQyICqthZ2dBm1eJ7y1G2yN0j8s"

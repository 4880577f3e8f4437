package handler

import (
	"encoding/json"
	"net/http"

	"github.com/splitsphere/backend/internal/service"
	"github.com/splitsphere/backend/internal/util"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	UserID      string `json:"userId"`
	AccountName string `json:"accountName"`
	Code        string `json:"code"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	UserID string `json:"userId"`
	Code   string `json:"code"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"userId"`
	AccountName string `json:"accountName"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, util.ErrInvalidInput)
		return
	}

	result, err := h.auth.Register(r.Context(), req.UserID, req.AccountName, req.Code)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, AuthResponse{
		Token:       result.Token,
		UserID:      result.User.UserID,
		AccountName: result.User.AccountName,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, util.ErrInvalidInput)
		return
	}

	result, err := h.auth.Login(r.Context(), req.UserID, req.Code)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AuthResponse{
		Token:       result.Token,
		UserID:      result.User.UserID,
		AccountName: result.User.AccountName,
	})
}

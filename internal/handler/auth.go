package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/service"
)

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignup handles POST /signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, messageResponse(msgBodyTooLarge))
			return
		}
		writeJSON(w, http.StatusBadRequest, messageResponse(msgBadBody))
		return
	}

	profile, err := h.service.Signup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, messageResponse(msgIncomplete))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, messageResponse(msgEmailTaken))
		default:
			writeJSON(w, http.StatusInternalServerError, messageResponse(msgServerError))
		}
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleLogin handles POST /login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, messageResponse(msgBodyTooLarge))
			return
		}
		writeJSON(w, http.StatusBadRequest, messageResponse(msgBadBody))
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, messageResponse(msgBadLogin))
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse(msgServerError))
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}

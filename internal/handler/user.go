package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskboard/taskboard-go/internal/middleware"
	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/service"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleProfile handles GET /user requests. The email comes from the
// verified bearer token, never from request input.
func (h *UserHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse(msgUnauthorized))
		return
	}

	profiles, err := h.service.Profiles(r.Context(), email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse(msgServerError))
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// HandleUpdateName handles POST /user/update/name requests.
func (h *UserHandler) HandleUpdateName(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse(msgBadBody))
		return
	}

	if err := h.service.UpdateName(r.Context(), req.ID, req.NewName); err != nil {
		if errors.Is(err, service.ErrWrongID) {
			writeJSON(w, http.StatusBadRequest, messageResponse(msgWrongID))
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse(msgServerError))
		return
	}

	writeJSON(w, http.StatusOK, messageWithID(msgNameUpdated, req.ID))
}

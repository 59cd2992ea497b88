package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/service"
)

// TaskHandler handles HTTP requests for board tasks.
type TaskHandler struct {
	service *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// HandleList handles GET /todos requests.
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse(msgServerError))
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// HandleCreate handles POST /create requests.
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, messageResponse(msgBodyTooLarge))
			return
		}
		writeJSON(w, http.StatusBadRequest, messageResponse(msgBadBody))
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse(msgServerError))
		return
	}

	writeJSON(w, http.StatusOK, model.CreateTaskResponse{ID: id})
}

// HandleGet handles GET /todos/{id} requests. A missing task is an empty
// result, not an error.
func (h *TaskHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongID):
			writeJSON(w, http.StatusBadRequest, messageResponse(msgWrongID))
		case errors.Is(err, service.ErrTaskNotFound):
			writeJSON(w, http.StatusOK, nil)
		default:
			writeJSON(w, http.StatusInternalServerError, messageResponse(msgServerError))
		}
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// HandleUpdateStatusPath handles GET /todos/update/{id}/{columnId} requests.
// Kept for clients of the original API, which moved cards between columns
// with a GET.
func (h *TaskHandler) HandleUpdateStatusPath(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	columnID := chi.URLParam(r, "columnId")

	h.updateStatus(w, r, id, columnID)
}

// HandleUpdateStatus handles PATCH /todos/{id}/status requests.
func (h *TaskHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse(msgBadBody))
		return
	}

	h.updateStatus(w, r, id, req.Status)
}

func (h *TaskHandler) updateStatus(w http.ResponseWriter, r *http.Request, id, status string) {
	if err := h.service.UpdateStatus(r.Context(), id, status); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongID), errors.Is(err, service.ErrTaskNotFound):
			writeJSON(w, http.StatusBadRequest, messageResponse(msgWrongID))
		default:
			writeJSON(w, http.StatusInternalServerError, messageResponse(msgServerError))
		}
		return
	}

	writeJSON(w, http.StatusOK, messageWithID(msgTaskUpdated, id))
}

// HandleDelete serves both GET /todos/delete/{id} and DELETE /todos/{id}.
// Deleting an already-deleted task yields the wrong-ID response again.
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongID), errors.Is(err, service.ErrTaskNotFound):
			writeJSON(w, http.StatusBadRequest, messageResponse(msgWrongID))
		default:
			writeJSON(w, http.StatusInternalServerError, messageResponse(msgServerError))
		}
		return
	}

	writeJSON(w, http.StatusOK, messageWithID(msgTaskDeleted, id))
}

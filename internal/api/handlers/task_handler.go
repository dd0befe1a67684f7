package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/entity"
	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	taskService *usecase.TaskService
}

func NewTaskHandler(taskService *usecase.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// errorResponse is the failure envelope. Message is a string for most
// failures and a []string for validation failures, which enumerate every
// violated field in one response.
type errorResponse struct {
	Message    any    `json:"message"`
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message any) {
	writeJSON(w, status, errorResponse{
		Message:    message,
		Error:      http.StatusText(status),
		StatusCode: status,
	})
}

// parseTaskID parses a path identifier. A fractional token such as "1.5"
// truncates to its integer part and addresses task 1; anything that is not
// an integer or integer.digits token fails with ErrInvalidTaskID.
func parseTaskID(raw string) (int, error) {
	if id, err := strconv.Atoi(raw); err == nil {
		return id, nil
	}

	whole, frac, found := strings.Cut(raw, ".")
	if !found || frac == "" {
		return 0, entity.ErrInvalidTaskID
	}
	for _, c := range frac {
		if c < '0' || c > '9' {
			return 0, entity.ErrInvalidTaskID
		}
	}

	id, err := strconv.Atoi(whole)
	if err != nil {
		return 0, entity.ErrInvalidTaskID
	}
	return id, nil
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseTaskID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed (numeric string is expected)")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), taskID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, fmt.Sprintf("Task with id %d not found", taskID))
		default:
			writeError(w, http.StatusInternalServerError, "failed to fetch task")
		}
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req entity.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if messages := req.Validate(); len(messages) > 0 {
		writeError(w, http.StatusBadRequest, messages)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidTaskData):
			writeError(w, http.StatusBadRequest, "invalid data creating task")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create task")
		}
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseTaskID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed (numeric string is expected)")
		return
	}

	var req entity.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if messages := req.Validate(); len(messages) > 0 {
		writeError(w, http.StatusBadRequest, messages)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), taskID, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, fmt.Sprintf("Task with id %d not found", taskID))
		case errors.Is(err, entity.ErrInvalidTaskData):
			writeError(w, http.StatusBadRequest, "invalid data updating task")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update task")
		}
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseTaskID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed (numeric string is expected)")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID); err != nil {
		switch {
		case errors.Is(err, entity.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, fmt.Sprintf("Task with id %d not found", taskID))
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete task")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

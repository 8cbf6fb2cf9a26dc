package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/anchorhq/anchor/internal/ctxkeys"
	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
	"github.com/anchorhq/anchor/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type goalRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	TargetDate  *string `json:"target_date"`
	Priority    int     `json:"priority"`
}

func (req *goalRequest) input() (service.GoalInput, error) {
	input := service.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	}
	if req.TargetDate != nil && *req.TargetDate != "" {
		t, err := time.Parse(model.DateLayout, *req.TargetDate)
		if err != nil {
			return input, errors.New("invalid target_date, expected YYYY-MM-DD")
		}
		input.TargetDate = &t
	}
	return input, nil
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.input()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Create(user.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to create goal")
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = repository.GoalSortRecent
	}

	goals, err := h.goalService.Goals(user.ID, sortBy)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to list goals")
		return
	}

	completed, err := h.goalService.CountCompleted(user.ID)
	if err != nil {
		slog.Error("failed to count completed goals", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to list goals")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"goals":           goals,
		"completed_count": completed,
	})
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goal, err := h.goalService.ByID(user.ID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			writeError(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("failed to get goal", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to get goal")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.input()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Update(user.ID, r.PathValue("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrGoalNotFound):
			writeError(w, http.StatusNotFound, "goal not found")
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to update goal", "error", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "failed to update goal")
		}
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) setCompleted(w http.ResponseWriter, r *http.Request, completed bool) {
	user := ctxkeys.User(r.Context())

	goal, err := h.goalService.SetCompleted(user.ID, r.PathValue("id"), completed)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			writeError(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("failed to update goal completion", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to update goal")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, true)
}

func (h *GoalHandler) Uncomplete(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, false)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.goalService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			writeError(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("failed to delete goal", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to delete goal")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/anchorhq/anchor/internal/ctxkeys"
	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
	"github.com/anchorhq/anchor/internal/service"
)

type CheckInHandler struct {
	checkInService *service.CheckInService
}

func NewCheckInHandler(checkInService *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{
		checkInService: checkInService,
	}
}

type checkInRequest struct {
	MoodScore     int      `json:"mood_score"`
	EnergyLevel   int      `json:"energy_level"`
	SleepQuality  int      `json:"sleep_quality"`
	TriggerTags   []string `json:"trigger_tags"`
	GratitudeNote *string  `json:"gratitude_note"`
	Notes         *string  `json:"notes"`
}

type checkInResponse struct {
	CheckIn    *model.CheckIn    `json:"check_in"`
	Milestones []model.Milestone `json:"milestones_earned"`
}

// Submit records or replaces today's check-in.
func (h *CheckInHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req checkInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.CheckInInput{
		MoodScore:     req.MoodScore,
		EnergyLevel:   req.EnergyLevel,
		SleepQuality:  req.SleepQuality,
		TriggerTags:   req.TriggerTags,
		GratitudeNote: req.GratitudeNote,
		Notes:         req.Notes,
	}

	checkin, earned, err := h.checkInService.Submit(user.ID, time.Now(), input)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to submit check-in", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to submit check-in")
		return
	}

	if earned == nil {
		earned = []model.Milestone{}
	}
	writeJSON(w, http.StatusOK, checkInResponse{CheckIn: checkin, Milestones: earned})
}

// Today returns today's check-in, or 404 if none was submitted yet.
func (h *CheckInHandler) Today(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	checkin, err := h.checkInService.ByDay(user.ID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrCheckInNotFound) {
			writeError(w, http.StatusNotFound, "no check-in for today")
			return
		}
		slog.Error("failed to get check-in", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to get check-in")
		return
	}

	writeJSON(w, http.StatusOK, checkin)
}

// ByDate returns the check-in for a specific day (YYYY-MM-DD).
func (h *CheckInHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	day, err := time.Parse(model.DateLayout, r.PathValue("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	checkin, err := h.checkInService.ByDay(user.ID, day)
	if err != nil {
		if errors.Is(err, repository.ErrCheckInNotFound) {
			writeError(w, http.StatusNotFound, "no check-in for this day")
			return
		}
		slog.Error("failed to get check-in", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to get check-in")
		return
	}

	writeJSON(w, http.StatusOK, checkin)
}

// List returns check-ins in the trailing window. Defaults to 30 days.
func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 365 {
			writeError(w, http.StatusBadRequest, "days must be between 1 and 365")
			return
		}
		days = n
	}

	checkins, err := h.checkInService.Window(user.ID, time.Now(), days)
	if err != nil {
		slog.Error("failed to list check-ins", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to list check-ins")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"window_days": days,
		"check_ins":   checkins,
	})
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/anchorhq/anchor/internal/ctxkeys"
	"github.com/anchorhq/anchor/internal/service"
)

type ProgressHandler struct {
	progressService *service.ProgressService
	defaultWindow   int
}

func NewProgressHandler(progressService *service.ProgressService, defaultWindow int) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		defaultWindow:   defaultWindow,
	}
}

// Overview returns the derived progress metrics for the signed-in user:
// current streak, days clean, rolling averages and trigger frequencies.
// The statistics window is caller-selected via ?days (typically 7, 30
// or 90), defaulting to 30.
func (h *ProgressHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	days := h.defaultWindow
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 365 {
			writeError(w, http.StatusBadRequest, "days must be between 1 and 365")
			return
		}
		days = n
	}

	overview, err := h.progressService.Overview(user.ID, time.Now(), days)
	if err != nil {
		slog.Error("failed to build progress overview", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

// Dates returns the user's check-in days, most recent first, for chart
// rendering by the client. ?limit caps the count, default 90.
func (h *ProgressHandler) Dates(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	limit := 90
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 1000 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 1000")
			return
		}
		limit = n
	}

	dates, err := h.progressService.RecentDates(user.ID, limit)
	if err != nil {
		slog.Error("failed to load check-in dates", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load check-in dates")
		return
	}

	if dates == nil {
		dates = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"dates": dates})
}

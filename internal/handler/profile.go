package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anchorhq/anchor/internal/ctxkeys"
	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile := ctxkeys.Profile(r.Context())
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.profileService.UpdateName(user.ID, req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "name updated"})
}

type recoveryStartRequest struct {
	RecoveryStartDate *string `json:"recovery_start_date"`
}

// UpdateRecoveryStartDate sets or clears the recovery start date. Clearing
// it stops days-clean tracking without touching check-in history.
func (h *ProfileHandler) UpdateRecoveryStartDate(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req recoveryStartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var startDate *time.Time
	if req.RecoveryStartDate != nil && *req.RecoveryStartDate != "" {
		t, err := time.Parse(model.DateLayout, *req.RecoveryStartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid recovery_start_date, expected YYYY-MM-DD")
			return
		}
		if t.After(time.Now()) {
			writeError(w, http.StatusBadRequest, "recovery_start_date cannot be in the future")
			return
		}
		startDate = &t
	}

	err := h.profileService.UpdateRecoveryStartDate(user.ID, startDate)
	if err != nil {
		slog.Error("failed to update recovery start date", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to update recovery start date")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "recovery start date updated"})
}

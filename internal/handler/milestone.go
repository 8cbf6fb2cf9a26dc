package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anchorhq/anchor/internal/ctxkeys"
	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/service"
)

type MilestoneHandler struct {
	milestoneService *service.MilestoneService
}

func NewMilestoneHandler(milestoneService *service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneService: milestoneService,
	}
}

func (h *MilestoneHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	milestones, err := h.milestoneService.Milestones(user.ID)
	if err != nil {
		slog.Error("failed to list milestones", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to list milestones")
		return
	}

	if milestones == nil {
		milestones = []model.Milestone{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"milestones": milestones})
}

// Evaluate re-runs milestone evaluation on demand. Safe to repeat: already
// earned milestones are skipped.
func (h *MilestoneHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	earned, err := h.milestoneService.Evaluate(user.ID, time.Now())
	if err != nil {
		// Partial failures still return the milestones that were recorded.
		slog.Error("milestone evaluation incomplete", "error", err, "user_id", user.ID)
	}

	if earned == nil {
		earned = []model.Milestone{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"milestones_earned": earned})
}

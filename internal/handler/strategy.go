package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/anchorhq/anchor/internal/ctxkeys"
	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
	"github.com/anchorhq/anchor/internal/service"
)

type StrategyHandler struct {
	strategyService *service.StrategyService
}

func NewStrategyHandler(strategyService *service.StrategyService) *StrategyHandler {
	return &StrategyHandler{
		strategyService: strategyService,
	}
}

type strategyRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (h *StrategyHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req strategyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	strategy, err := h.strategyService.Create(user.ID, service.StrategyInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create strategy", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to create strategy")
		return
	}

	writeJSON(w, http.StatusCreated, strategy)
}

func (h *StrategyHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	strategies, err := h.strategyService.Strategies(user.ID)
	if err != nil {
		slog.Error("failed to list strategies", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to list strategies")
		return
	}

	if strategies == nil {
		strategies = []*model.Strategy{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"strategies": strategies})
}

func (h *StrategyHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req strategyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	strategy, err := h.strategyService.Update(user.ID, r.PathValue("id"), service.StrategyInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStrategyNotFound):
			writeError(w, http.StatusNotFound, "strategy not found")
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to update strategy", "error", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "failed to update strategy")
		}
		return
	}

	writeJSON(w, http.StatusOK, strategy)
}

type favoriteRequest struct {
	Favorite bool `json:"favorite"`
}

func (h *StrategyHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req favoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.strategyService.SetFavorite(user.ID, r.PathValue("id"), req.Favorite)
	if err != nil {
		if errors.Is(err, repository.ErrStrategyNotFound) {
			writeError(w, http.StatusNotFound, "strategy not found")
			return
		}
		slog.Error("failed to set favorite", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to update strategy")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"favorite": req.Favorite})
}

func (h *StrategyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.strategyService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrStrategyNotFound) {
			writeError(w, http.StatusNotFound, "strategy not found")
			return
		}
		slog.Error("failed to delete strategy", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to delete strategy")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

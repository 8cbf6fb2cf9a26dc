package handler

import (
	"log/slog"
	"net/http"

	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/service"
)

// LibraryHandler serves the built-in coping strategy library.
type LibraryHandler struct {
	libraryService *service.LibraryService
}

func NewLibraryHandler(libraryService *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{
		libraryService: libraryService,
	}
}

func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var strategies []*model.LibraryStrategy
	var err error
	if category != "" {
		strategies, err = h.libraryService.StrategiesByCategory(category)
	} else {
		strategies, err = h.libraryService.Strategies()
	}
	if err != nil {
		slog.Error("failed to load strategy library", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load library")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"strategies": strategies})
}

func (h *LibraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	strategy, err := h.libraryService.Strategy(r.PathValue("slug"))
	if err != nil {
		writeError(w, http.StatusNotFound, "strategy not found")
		return
	}

	writeJSON(w, http.StatusOK, strategy)
}

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

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

type contactRequest struct {
	Name         string  `json:"name"`
	Relationship string  `json:"relationship"`
	Phone        string  `json:"phone"`
	Notes        *string `json:"notes"`
	IsSponsor    bool    `json:"is_sponsor"`
}

func (req *contactRequest) input() service.ContactInput {
	return service.ContactInput{
		Name:         req.Name,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		Notes:        req.Notes,
		IsSponsor:    req.IsSponsor,
	}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.contactService.Create(user.ID, req.input())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create contact", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to create contact")
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	contacts, err := h.contactService.Contacts(user.ID)
	if err != nil {
		slog.Error("failed to list contacts", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to list contacts")
		return
	}

	if contacts == nil {
		contacts = []*model.Contact{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.contactService.Update(user.ID, r.PathValue("id"), req.input())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrContactNotFound):
			writeError(w, http.StatusNotFound, "contact not found")
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to update contact", "error", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "failed to update contact")
		}
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.contactService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			writeError(w, http.StatusNotFound, "contact not found")
			return
		}
		slog.Error("failed to delete contact", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to delete contact")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/anchorhq/anchor/internal/ctxkeys"
	"github.com/anchorhq/anchor/internal/service"
)

type AccountHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewAccountHandler(userService *service.UserService, authService *service.AuthService) *AccountHandler {
	return &AccountHandler{
		userService: userService,
		authService: authService,
	}
}

// Me returns the signed-in user and profile.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	profile := ctxkeys.Profile(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"user":    user,
		"profile": profile,
	})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *AccountHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.userService.UpdatePassword(user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCurrentPassword) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

type setPasswordRequest struct {
	Password string `json:"password"`
}

func (h *AccountHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req setPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.authService.SetPassword(user.ID, req.Password)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password set"})
}

func (h *AccountHandler) RemovePassword(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.authService.RemovePassword(user.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password removed"})
}

func (h *AccountHandler) RequestEmailChange(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req emailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.authService.RequestEmailChange(user.ID, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) || errors.Is(err, service.ErrEmailAlreadyExists) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to request email change", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to request email change")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "verification email sent to the new address"})
}

func (h *AccountHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.authService.CompleteOnboarding(user.ID, req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "welcome aboard"})
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.userService.DeleteAccount(user.ID)
	if err != nil {
		slog.Error("failed to delete account", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to delete account")
		return
	}

	h.authService.ClearJWTCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}

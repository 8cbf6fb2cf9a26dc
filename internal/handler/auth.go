package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/anchorhq/anchor/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	jwtExpiry   time.Duration
}

func NewAuthHandler(authService *service.AuthService, jwtExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtExpiry:   jwtExpiry,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrEmailNotVerified) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		slog.Error("login failed", "error", err)
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.jwtExpiry))
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

type emailRequest struct {
	Email string `json:"email"`
}

// RequestMagicLink sends a sign-in link, creating the account if needed.
func (h *AuthHandler) RequestMagicLink(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.authService.SendMagicLink(req.Email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to send magic link", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to send sign-in link")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "check your email for a sign-in link"})
}

// ForgotPassword sends a recovery link. Always responds with success so
// callers can't probe which emails exist.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.authService.SendForgotPasswordLink(req.Email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to send forgot password link", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to send recovery link")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "if that account exists, a recovery link is on its way"})
}

// VerifyMagicLink consumes the emailed token and signs the user in.
func (h *AuthHandler) VerifyMagicLink(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.VerifyMagicLink(r.PathValue("token"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired sign-in link")
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	needsOnboarding, err := h.authService.NeedsOnboarding(user.ID)
	if err != nil {
		slog.Warn("failed to check onboarding state", "error", err, "user_id", user.ID)
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.jwtExpiry))
	writeJSON(w, http.StatusOK, map[string]any{
		"user":             user,
		"needs_onboarding": needsOnboarding,
	})
}

// VerifyForgotPassword consumes a recovery link: the old password is
// removed and the user is signed in so they can set a fresh one.
func (h *AuthHandler) VerifyForgotPassword(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.VerifyMagicLink(r.PathValue("token"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired recovery link")
		return
	}

	err = h.authService.RemovePassword(user.ID)
	if err != nil {
		slog.Warn("failed to remove password during recovery", "error", err, "user_id", user.ID)
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.jwtExpiry))
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// VerifyEmailChange finishes a pending email change and reissues the JWT
// since the email claim changed.
func (h *AuthHandler) VerifyEmailChange(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.VerifyEmailChange(r.PathValue("token"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid or expired verification link")
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to refresh session")
		return
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.jwtExpiry))
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
	"github.com/anchorhq/anchor/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidEmail       = errors.New("invalid email address")
)

type AuthService struct {
	userRepository         repository.UserRepository
	profileRepository      repository.ProfileRepository
	tokenRepository        repository.TokenRepository
	emailService           *EmailService
	jwtSecret              string
	isProduction           bool
	jwtExpiry              time.Duration
	tokenEmailChangeExpiry time.Duration
	tokenMagicLinkExpiry   time.Duration
}

func NewAuthService(
	userRepository repository.UserRepository,
	profileRepository repository.ProfileRepository,
	tokenRepository repository.TokenRepository,
	emailService *EmailService,
	jwtSecret string,
	isProduction bool,
	jwtExpiry time.Duration,
	tokenEmailChangeExpiry time.Duration,
	tokenMagicLinkExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepository:         userRepository,
		profileRepository:      profileRepository,
		tokenRepository:        tokenRepository,
		emailService:           emailService,
		jwtSecret:              jwtSecret,
		isProduction:           isProduction,
		jwtExpiry:              jwtExpiry,
		tokenEmailChangeExpiry: tokenEmailChangeExpiry,
		tokenMagicLinkExpiry:   tokenMagicLinkExpiry,
	}
}

func (s *AuthService) Login(email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.HasPassword() {
		return nil, fmt.Errorf("this account uses passwordless login. Please use the magic link option")
	}

	err = s.ComparePassword(password, *user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", ErrInvalidCredentials)
	}

	if user.EmailVerifiedAt == nil {
		return nil, fmt.Errorf("email not verified: %w", ErrEmailNotVerified)
	}

	return user, nil
}

func (s *AuthService) ValidatePassword(password string) error {
	return validation.ValidatePassword(password)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) GenerateToken() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) SetJWTCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) RequestEmailChange(userID, newEmail string) error {
	newEmail = strings.TrimSpace(strings.ToLower(newEmail))

	err := validation.ValidateEmail(newEmail)
	if err != nil {
		return ErrInvalidEmail
	}

	user, err := s.userRepository.ByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return fmt.Errorf("user not found: %w", err)
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if newEmail == user.Email {
		return fmt.Errorf("email is already set to this value: %w", ErrInvalidEmail)
	}

	existingUser, err := s.userRepository.ByEmail(newEmail)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existingUser != nil {
		return fmt.Errorf("email already in use: %w", ErrEmailAlreadyExists)
	}

	err = s.tokenRepository.DeleteByUserAndType(user.ID, model.TokenTypeEmailChange)
	if err != nil {
		slog.Warn("failed to delete old email change tokens", "error", err, "user_id", user.ID)
	}

	user.PendingEmail = &newEmail
	err = s.userRepository.Update(user)
	if err != nil {
		return fmt.Errorf("failed to save pending email: %w", err)
	}

	verificationToken, err := s.GenerateToken()
	if err != nil {
		return err
	}

	token := &model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypeEmailChange,
		Token:     verificationToken,
		ExpiresAt: time.Now().Add(s.tokenEmailChangeExpiry),
	}
	err = s.tokenRepository.Create(token)
	if err != nil {
		return err
	}

	profile, err := s.profileRepository.ByUserID(user.ID)
	name := "User"
	if err == nil {
		name = profile.Name
	}

	err = s.emailService.SendEmailChangeVerification(newEmail, verificationToken, name)
	if err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	err = s.emailService.SendEmailChangeNotification(user.Email, newEmail, name)
	if err != nil {
		slog.Warn("failed to send email change notification", "error", err, "user_id", user.ID)
	}

	return nil
}

// VerifyEmailChange completes the email change after verification
func (s *AuthService) VerifyEmailChange(token string) (*model.User, error) {
	// ConsumeToken atomically marks token as used (prevents race conditions)
	tokenModel, err := s.tokenRepository.ConsumeToken(token)
	if err != nil {
		return nil, errors.New("invalid or expired verification link")
	}

	if tokenModel.Type != model.TokenTypeEmailChange {
		return nil, errors.New("invalid token type")
	}

	user, err := s.userRepository.ByID(tokenModel.UserID)
	if err != nil {
		return nil, err
	}

	if user.PendingEmail == nil || *user.PendingEmail == "" {
		return nil, errors.New("no pending email change found")
	}

	user.Email = *user.PendingEmail
	user.PendingEmail = nil

	err = s.userRepository.Update(user)
	if err != nil {
		return nil, fmt.Errorf("failed to update email: %w", err)
	}

	return user, nil
}

func (s *AuthService) SetPassword(userID, newPassword string) error {
	user, err := s.userRepository.ByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.HasPassword() {
		return errors.New("password already set, use change password instead")
	}

	err = s.ValidatePassword(newPassword)
	if err != nil {
		return err
	}

	hashedPassword, err := s.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = &hashedPassword
	err = s.userRepository.Update(user)
	if err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}

	slog.Info("password set for passwordless account", "user_id", userID)
	return nil
}

func (s *AuthService) RemovePassword(userID string) error {
	user, err := s.userRepository.ByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !user.HasPassword() {
		return errors.New("account is already passwordless")
	}

	user.PasswordHash = nil
	err = s.userRepository.Update(user)
	if err != nil {
		return fmt.Errorf("failed to remove password: %w", err)
	}

	slog.Info("password removed, account is now passwordless", "user_id", userID)
	return nil
}

// SendMagicLink handles the combined login/signup flow.
// Existing users get a sign-in link, new users get an account plus the link.
func (s *AuthService) SendMagicLink(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	err := validation.ValidateEmail(email)
	if err != nil {
		return ErrInvalidEmail
	}

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		now := time.Now()
		userID := uuid.New().String()

		user = &model.User{
			ID:        userID,
			Email:     email,
			CreatedAt: now,
		}

		err = s.userRepository.Create(user)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		profile := &model.Profile{
			ID:        uuid.New().String(),
			UserID:    userID,
			Name:      "",
			CreatedAt: now,
		}

		err = s.profileRepository.Create(profile)
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		slog.Info("new passwordless user created", "email", email, "user_id", userID)
	}

	err = s.tokenRepository.DeleteByUserAndType(user.ID, model.TokenTypeMagicLink)
	if err != nil {
		slog.Warn("failed to delete old magic link tokens", "error", err, "user_id", user.ID)
	}

	magicToken, err := s.GenerateToken()
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	token := &model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypeMagicLink,
		Token:     magicToken,
		ExpiresAt: time.Now().Add(s.tokenMagicLinkExpiry),
	}
	err = s.tokenRepository.Create(token)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	profile, err := s.profileRepository.ByUserID(user.ID)
	name := ""
	if err == nil && profile != nil {
		name = profile.Name
	}

	err = s.emailService.SendMagicLinkEmail(user.Email, magicToken, name)
	if err != nil {
		slog.Error("failed to send magic link email", "error", err, "email", user.Email)
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("magic link sent", "email", user.Email)
	return nil
}

// SendForgotPasswordLink removes password access via a one-time sign-in link.
// Always reports success so callers can't probe which emails exist.
func (s *AuthService) SendForgotPasswordLink(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	err := validation.ValidateEmail(email)
	if err != nil {
		return ErrInvalidEmail
	}

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		slog.Info("forgot password requested for non-existent email", "email", email)
		return nil
	}

	if !user.HasPassword() {
		slog.Info("forgot password requested for passwordless account", "email", email)
		return nil
	}

	err = s.tokenRepository.DeleteByUserAndType(user.ID, model.TokenTypeMagicLink)
	if err != nil {
		slog.Warn("failed to delete old tokens", "error", err, "user_id", user.ID)
	}

	magicToken, err := s.GenerateToken()
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	token := &model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypeMagicLink,
		Token:     magicToken,
		ExpiresAt: time.Now().Add(s.tokenMagicLinkExpiry),
	}
	err = s.tokenRepository.Create(token)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	profile, err := s.profileRepository.ByUserID(user.ID)
	name := ""
	if err == nil && profile != nil {
		name = profile.Name
	}

	err = s.emailService.SendForgotPasswordEmail(user.Email, magicToken, name)
	if err != nil {
		slog.Error("failed to send forgot password email", "error", err, "email", user.Email)
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("forgot password link sent", "email", user.Email)
	return nil
}

// VerifyMagicLink verifies the magic link token and returns the authenticated user
func (s *AuthService) VerifyMagicLink(token string) (*model.User, error) {
	tokenModel, err := s.tokenRepository.ConsumeToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired magic link")
	}

	if tokenModel.Type != model.TokenTypeMagicLink {
		return nil, fmt.Errorf("invalid token type")
	}

	user, err := s.userRepository.ByID(tokenModel.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if user.EmailVerifiedAt == nil {
		now := time.Now()
		user.EmailVerifiedAt = &now
		err = s.userRepository.Update(user)
		if err != nil {
			slog.Warn("failed to verify email", "error", err, "user_id", user.ID)
		}
	}

	slog.Info("user authenticated via magic link", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// NeedsOnboarding reports whether the user still has to set a name.
func (s *AuthService) NeedsOnboarding(userID string) (bool, error) {
	profile, err := s.profileRepository.ByUserID(userID)
	if err != nil {
		return false, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile.Name == "", nil
}

// CompleteOnboarding sets the user's name and sends the welcome email.
func (s *AuthService) CompleteOnboarding(userID, name string) error {
	name = strings.TrimSpace(name)

	err := validation.ValidateName(name)
	if err != nil {
		return err
	}

	err = s.profileRepository.UpdateName(userID, name)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	user, err := s.userRepository.ByID(userID)
	if err == nil {
		err = s.emailService.SendWelcomeEmail(user.Email, name)
		if err != nil {
			slog.Warn("failed to send welcome email", "error", err, "email", user.Email)
		}
	}

	slog.Info("onboarding completed", "user_id", userID, "name", name)
	return nil
}

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/anchorhq/anchor/internal/model"
)

func TestCreateRejectsUnknownTokenType(t *testing.T) {
	// The type guard runs before any DB access, so no connection is needed.
	repo := NewTokenRepository(nil)

	err := repo.Create(&model.Token{
		UserID:    "u1",
		Type:      "password_reset",
		Token:     "abc",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if !errors.Is(err, ErrInvalidTokenType) {
		t.Fatalf("Create() error = %v, want ErrInvalidTokenType", err)
	}
}

func TestValidTokenTypesMatchModel(t *testing.T) {
	for _, tokenType := range []string{model.TokenTypeMagicLink, model.TokenTypeEmailChange} {
		if !validTokenTypes[tokenType] {
			t.Errorf("token type %q not accepted", tokenType)
		}
	}
	if len(validTokenTypes) != 2 {
		t.Errorf("validTokenTypes has %d entries, want 2", len(validTokenTypes))
	}
}

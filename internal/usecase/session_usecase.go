package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput accepts either identifier; at least one must be set.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// SessionOutput is what the session transport binds to the response.
type SessionOutput struct {
	User   *entity.User // Sanitized.
	Tokens *entity.TokenPair
}

// SessionUsecase owns the credential lifecycle of a principal.
type SessionUsecase interface {
	// Login checks the secret and rotates in a fresh token pair.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Refresh exchanges the single active refresh token for a new pair.
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)

	// Rotate issues a pair and persists its refresh fingerprint, conditional on the
	// principal's fingerprint being unchanged since it was loaded.
	Rotate(ctx context.Context, principal *entity.User) (*entity.TokenPair, error)

	// Logout invalidates the stored refresh fingerprint.
	Logout(ctx context.Context, userID uuid.UUID) error

	// Authenticate resolves an access token to a sanitized principal.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}

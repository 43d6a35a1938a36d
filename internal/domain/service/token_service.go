package service

import (
	"time"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService mints and validates the signed credentials of a session.
// It holds no state beyond its secrets and expiry policy; persisting the refresh
// fingerprint is the caller's job.
type TokenService interface {
	// Issue signs a new token of the given kind for subjectID.
	Issue(subjectID uuid.UUID, kind entity.TokenKind) (token string, expiresAt time.Time, err error)

	// IssuePair signs a fresh access and refresh token for subjectID.
	IssuePair(subjectID uuid.UUID) (*entity.TokenPair, error)

	// Verify checks signature, expiry and kind. Expired tokens yield ErrTokenExpired,
	// everything else ErrTokenInvalid.
	Verify(token string, kind entity.TokenKind) (*entity.TokenClaims, error)

	// Fingerprint derives the value stored in the credential store for a refresh token.
	Fingerprint(token string) string

	// TTL returns the configured lifetime for the kind.
	TTL(kind entity.TokenKind) time.Duration
}

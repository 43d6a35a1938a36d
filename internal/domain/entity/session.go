package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind distinguishes the two signed credentials a session is made of.
type TokenKind string

const (
	// TokenKindAccess is the short-lived credential sent with every request.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is the long-lived credential exchanged for a new pair.
	TokenKindRefresh TokenKind = "refresh"
)

// String returns the string representation of the TokenKind.
func (k TokenKind) String() string {
	return string(k)
}

// TokenClaims is the verified content of a signed token.
type TokenClaims struct {
	SubjectID uuid.UUID
	Kind      TokenKind
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair is what a successful login or refresh hands to the session transport.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

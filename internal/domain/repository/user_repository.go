// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrRefreshFingerprintMismatch is returned when a conditional fingerprint update finds
	// a different stored value than the caller expected.
	ErrRefreshFingerprintMismatch = errors.New("refresh fingerprint mismatch")
)

// UserRepository defines the credential store and profile operations for users.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsernameOrEmail retrieves the first user whose username or email matches.
	// Empty arguments never match.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the mutable profile fields (full name, email, media, password hash).
	Update(ctx context.Context, user *entity.User) error

	// UpdateRefreshFingerprint replaces the stored fingerprint with next only when the stored
	// value still equals expected. An empty expected matches a cleared fingerprint.
	UpdateRefreshFingerprint(ctx context.Context, id uuid.UUID, expected, next string) error

	// ClearRefreshFingerprint unsets the stored fingerprint unconditionally.
	ClearRefreshFingerprint(ctx context.Context, id uuid.UUID) error

	// AddToWatchHistory appends videoID to the user's history once.
	// It reports whether the history changed.
	AddToWatchHistory(ctx context.Context, userID, videoID uuid.UUID) (bool, error)
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is the principal of the system: one account that can log in and own resources.
type User struct {
	ID               uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Username         string      // Lower-cased unique handle.
	Email            string      // Unique contact email, also accepted as a login identifier.
	FullName         string      // Display name.
	Avatar           *MediaAsset // Required profile image.
	CoverImage       *MediaAsset // Optional channel banner. Nil when never uploaded.
	PasswordHash     string      // bcrypt hash of the secret.
	RefreshTokenHash string      // Fingerprint of the single active refresh token. Empty when logged out.
	WatchHistory     []uuid.UUID // Videos this user has opened, oldest first.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Sanitized returns a copy safe to attach to request context or serialize:
// the password hash and refresh fingerprint are cleared.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.PasswordHash = ""
	clone.RefreshTokenHash = ""
	clone.WatchHistory = slices.Clone(u.WatchHistory)

	return &clone
}

// HasWatched reports whether the video is already in the user's watch history.
func (u *User) HasWatched(videoID uuid.UUID) bool {
	return slices.Contains(u.WatchHistory, videoID)
}

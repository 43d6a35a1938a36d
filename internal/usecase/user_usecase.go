// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Avatar and CoverImage are local temp paths; an empty path means the file was not sent.
type RegisterInput struct {
	FullName   string
	Email      string
	Username   string
	Password   string
	Avatar     string
	CoverImage string
}

// ChangePasswordInput defines the data required to rotate a user's secret.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// UpdateAccountInput defines the editable profile fields.
type UpdateAccountInput struct {
	FullName string
	Email    string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
	UpdateAccount(ctx context.Context, userID uuid.UUID, input UpdateAccountInput) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error)
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userProfileColumns are the columns Update is allowed to write.
var userProfileColumns = []string{
	"full_name", "email", "password_hash", "updated_at",
	"avatar_remote_id", "avatar_url", "avatar_resource_type", "avatar_duration",
	"cover_image_remote_id", "cover_image_url", "cover_image_resource_type", "cover_image_duration",
}

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByUsernameOrEmail retrieves the first user matching either identifier.
func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	if username == "" && email == "" {
		return nil, repository.ErrUserNotFound
	}

	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	switch {
	case username != "" && email != "":
		query = query.Where("username = ? OR email = ?", username, email)
	case username != "":
		query = query.Where("username = ?", username)
	default:
		query = query.Where("email = ?", email)
	}

	var userM model.UserModel
	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by username or email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isInvalidInput(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the profile columns. The refresh fingerprint and watch history have
// dedicated operations and are never touched here.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Select(userProfileColumns).
		Updates(userM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateRefreshFingerprint is a compare-and-set on refresh_token_hash.
func (repo *userRepository) UpdateRefreshFingerprint(ctx context.Context, id uuid.UUID, expected, next string) error {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id)
	if expected == "" {
		query = query.Where("refresh_token_hash IS NULL")
	} else {
		query = query.Where("refresh_token_hash = ?", expected)
	}

	result := query.Update("refresh_token_hash", next)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update refresh fingerprint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshFingerprintMismatch
	}

	return nil
}

// ClearRefreshFingerprint sets refresh_token_hash to NULL.
func (repo *userRepository) ClearRefreshFingerprint(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("refresh_token_hash", gorm.Expr("NULL"))
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear refresh fingerprint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddToWatchHistory appends to the jsonb history only when the id is not present yet.
func (repo *userRepository) AddToWatchHistory(ctx context.Context, userID, videoID uuid.UUID) (bool, error) {
	entry, err := json.Marshal([]string{videoID.String()})
	if err != nil {
		return false, errors.Wrap(err, "failed to encode watch history entry")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Where("NOT (watch_history @> ?::jsonb)", string(entry)).
		Update("watch_history", gorm.Expr("watch_history || ?::jsonb", string(entry)))
	if err := result.Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to update watch history")
	}

	return result.RowsAffected > 0, nil
}

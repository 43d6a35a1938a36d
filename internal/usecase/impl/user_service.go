package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	media    usecase.MediaOrchestrator
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Media    usecase.MediaOrchestrator
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		media:    params.Media,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account. The avatar is required, the cover image optional.
// Every validation happens before anything is uploaded.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	files := []usecase.MediaFile{
		{Field: usecase.FieldAvatar, LocalPath: input.Avatar, Required: true},
		{Field: usecase.FieldCoverImage, LocalPath: input.CoverImage},
	}

	user := &entity.User{
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.TrimSpace(input.Email),
		Username: strings.ToLower(strings.TrimSpace(input.Username)),
	}
	if user.FullName == "" || user.Email == "" || user.Username == "" || strings.TrimSpace(input.Password) == "" {
		srv.media.Discard(ctx, files)

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("all fields are required"), "register")
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		srv.media.Discard(ctx, files)

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email is malformed"), "register")
	}

	_, err := srv.userRepo.FindByUsernameOrEmail(ctx, user.Username, user.Email)
	switch {
	case err == nil:
		srv.media.Discard(ctx, files)

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "register")
	case !errors.Is(err, repository.ErrUserNotFound):
		srv.media.Discard(ctx, files)

		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.media.Discard(ctx, files)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = hash

	err = srv.media.Publish(ctx, files, func(ctx context.Context, assets usecase.UploadedAssets) error {
		user.Avatar = assets[usecase.FieldAvatar]
		user.CoverImage = assets[usecase.FieldCoverImage]

		return srv.userRepo.Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Error("Registration failed", slog.String("username", user.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID))

	return user.Sanitized(), nil
}

// GetUser loads a user profile without credentials.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserErr(err)
	}

	return user.Sanitized(), nil
}

// ChangePassword replaces the secret and ends the current session.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input usecase.ChangePasswordInput) error {
	if strings.TrimSpace(input.NewPassword) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("new password is required"), "change password")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return mapUserErr(err)
	}
	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return errors.Wrap(domainerrors.ErrInvalidPassword, "change password")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}
	if err := srv.userRepo.ClearRefreshFingerprint(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to end session")
	}

	srv.log(ctx).Info("Password changed", slog.Any("user_id", userID))

	return nil
}

// UpdateAccount edits the full name and email.
func (srv *userService) UpdateAccount(ctx context.Context, userID uuid.UUID, input usecase.UpdateAccountInput) (*entity.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	if fullName == "" || email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("fullName and email are required"), "update account")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email is malformed"), "update account")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserErr(err)
	}
	user.FullName = fullName
	user.Email = email

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	return user.Sanitized(), nil
}

// UpdateAvatar swaps in a new avatar, deleting the old one after the record points at the new one.
func (srv *userService) UpdateAvatar(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error) {
	return srv.replaceImage(ctx, userID, usecase.FieldAvatar, localPath, func(u *entity.User) **entity.MediaAsset {
		return &u.Avatar
	})
}

// UpdateCoverImage swaps in a new cover image.
func (srv *userService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error) {
	return srv.replaceImage(ctx, userID, usecase.FieldCoverImage, localPath, func(u *entity.User) **entity.MediaAsset {
		return &u.CoverImage
	})
}

func (srv *userService) replaceImage(
	ctx context.Context,
	userID uuid.UUID,
	field, localPath string,
	slot func(*entity.User) **entity.MediaAsset,
) (*entity.User, error) {
	if localPath == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingMedia.WithDetails(field+" is required"), "replace image")
	}

	var updated *entity.User
	files := []usecase.MediaFile{{Field: field, LocalPath: localPath, Required: true}}
	err := srv.media.Replace(ctx, files, func(ctx context.Context, assets usecase.UploadedAssets) ([]*entity.MediaAsset, error) {
		user, err := srv.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, mapUserErr(err)
		}

		target := slot(user)
		old := *target
		*target = assets[field]
		if err := srv.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to update user media")
		}
		updated = user

		return []*entity.MediaAsset{old}, nil
	})
	if err != nil {
		srv.log(ctx).Error("Image replace failed", slog.Any("user_id", userID), slog.String("field", field), slog.Any("error", err))

		return nil, err
	}

	return updated.Sanitized(), nil
}

func mapUserErr(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
	}

	return errors.Wrap(err, "failed to load user")
}

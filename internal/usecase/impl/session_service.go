package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/infra/metrics"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and starts a new session, replacing any previous one.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.TrimSpace(input.Email)
	if username == "" && email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("username or email is required"), "missing identifier")
	}
	if input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("password is required"), "missing password")
	}

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.Any("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokens, err := srv.Rotate(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return &usecase.SessionOutput{User: user.Sanitized(), Tokens: tokens}, nil
}

// Refresh accepts only the refresh token whose fingerprint is currently stored.
// Presenting any other valid refresh token for the user is treated as reuse.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	if refreshToken == "" {
		srv.metrics.Rotation(metrics.RotationInvalid)

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "refresh token missing")
	}

	claims, err := srv.tokenService.Verify(refreshToken, entity.TokenKindRefresh)
	if err != nil {
		srv.metrics.Rotation(metrics.RotationInvalid)

		return nil, errors.Wrap(err, "refresh token rejected")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.metrics.Rotation(metrics.RotationInvalid)

			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token subject not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenHash != srv.tokenService.Fingerprint(refreshToken) {
		srv.metrics.Rotation(metrics.RotationReused)
		srv.log(ctx).Warn("Refresh token reuse detected", slog.Any("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenReused, "refresh token is not the active one")
	}

	tokens, err := srv.Rotate(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.SessionOutput{User: user.Sanitized(), Tokens: tokens}, nil
}

// Rotate swaps the stored fingerprint from the one the principal was loaded with to the
// fingerprint of a freshly issued refresh token. Losing that race yields ErrRefreshTokenStale.
func (srv *sessionService) Rotate(ctx context.Context, principal *entity.User) (*entity.TokenPair, error) {
	tokens, err := srv.tokenService.IssuePair(principal.ID)
	if err != nil {
		srv.metrics.Rotation(metrics.RotationFailed)

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	next := srv.tokenService.Fingerprint(tokens.RefreshToken)
	err = srv.userRepo.UpdateRefreshFingerprint(ctx, principal.ID, principal.RefreshTokenHash, next)
	switch {
	case errors.Is(err, repository.ErrRefreshFingerprintMismatch):
		srv.metrics.Rotation(metrics.RotationStale)
		srv.log(ctx).Warn("Concurrent session rotation lost", slog.Any("user_id", principal.ID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenStale, "session changed during rotation")
	case errors.Is(err, repository.ErrUserNotFound):
		srv.metrics.Rotation(metrics.RotationInvalid)

		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "rotate session")
	case err != nil:
		srv.metrics.Rotation(metrics.RotationFailed)

		return nil, errors.Wrap(err, "failed to persist refresh fingerprint")
	}

	srv.metrics.Rotation(metrics.RotationIssued)
	srv.log(ctx).Debug("Session rotated", slog.Any("user_id", principal.ID))

	return tokens, nil
}

// Logout clears the stored fingerprint. Callers must not clear the client cookies on error.
func (srv *sessionService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.ClearRefreshFingerprint(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to clear refresh fingerprint", slog.Any("user_id", userID), slog.Any("error", err))
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "logout")
		}

		return errors.Wrap(err, "failed to clear refresh fingerprint")
	}

	srv.log(ctx).Info("User logged out", slog.Any("user_id", userID))

	return nil
}

// Authenticate verifies an access token and loads its subject.
func (srv *sessionService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if accessToken == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "access token missing")
	}

	claims, err := srv.tokenService.Verify(accessToken, entity.TokenKindAccess)
	if err != nil {
		return nil, errors.Wrap(err, "access token rejected")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "access token subject not found")
		}

		return nil, errors.Wrap(err, "failed to load principal")
	}

	return user.Sanitized(), nil
}

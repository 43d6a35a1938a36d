package middleware

import (
	"log/slog"

	"vidtube/internal/delivery/api/session"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the access token of a request into a principal.
type AuthMiddleware struct {
	sessions  usecase.SessionUsecase
	transport *session.Transport
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, transport *session.Transport, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, transport: transport, logger: logger}
}

// Authenticate reads the access token from the cookie or the Bearer header and attaches the
// sanitized user to the request. Every failure is a 401 rendered by the error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.transport.AccessToken(c)
		if token == "" {
			return domainerrors.ErrUnauthorized.WithDetails("access token is missing")
		}

		user, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetPrincipal(c, user)
		log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
		ctx := deliverycontext.WithLogger(c.Request().Context(), log.With(slog.String("user_id", user.ID.String())))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

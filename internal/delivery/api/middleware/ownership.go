package middleware

import (
	"context"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResourceLoader fetches an owned resource by id. It must report a missing resource as a
// not-found AppError.
type ResourceLoader func(ctx context.Context, id uuid.UUID) (entity.OwnedResource, error)

// Loader adapts a typed finder into a ResourceLoader.
func Loader[T entity.OwnedResource](find func(ctx context.Context, id uuid.UUID) (T, error)) ResourceLoader {
	return func(ctx context.Context, id uuid.UUID) (entity.OwnedResource, error) {
		return find(ctx, id)
	}
}

// RequireOwner loads the resource named by the path parameter and lets the request through
// only when the principal owns it. The loaded resource is cached for the handler.
// It must be used AFTER Authenticate.
func RequireOwner(param string, load ResourceLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			id, err := uuid.Parse(c.Param(param))
			if err != nil {
				return domainerrors.ErrInvalidID.WithDetails(param + " is not a valid id")
			}

			resource, err := load(c.Request().Context(), id)
			if err != nil {
				return errors.WithStack(err)
			}

			if !entity.IsOwnedBy(resource, principal.ID) {
				return domainerrors.ErrForbidden
			}

			deliverycontext.SetResource(c, resource)

			return next(c)
		}
	}
}

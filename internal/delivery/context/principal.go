package context

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyPrincipal is the key for the authenticated, sanitized user.
	KeyPrincipal ContextKey = "principal"

	// KeyResource is the key for the resource loaded by the ownership guard.
	KeyResource ContextKey = "resource"
)

// SetPrincipal attaches the authenticated user to both the echo context and the request context.
func SetPrincipal(c echo.Context, user *entity.User) {
	c.Set(string(KeyPrincipal), user)
	req := c.Request()
	c.SetRequest(req.WithContext(WithPrincipal(req.Context(), user)))
}

// GetPrincipal returns the authenticated user of the request, if any.
func GetPrincipal(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyPrincipal)).(*entity.User)

	return user, ok && user != nil
}

// WithPrincipal returns a new context carrying the authenticated user.
func WithPrincipal(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyPrincipal, user)
}

// PrincipalFromContext extracts the authenticated user from standard context.Context.
func PrincipalFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyPrincipal).(*entity.User)

	return user, ok && user != nil
}

// SetResource caches a resource loaded by a guard for the downstream handler.
func SetResource(c echo.Context, resource entity.OwnedResource) {
	c.Set(string(KeyResource), resource)
}

// GetResource returns the cached resource when it has the requested type.
func GetResource[T entity.OwnedResource](c echo.Context) (T, bool) {
	resource, ok := c.Get(string(KeyResource)).(T)

	return resource, ok
}

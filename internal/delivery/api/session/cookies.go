// Package session binds token pairs to the HTTP boundary.
package session

import (
	"net/http"
	"strings"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	bearerPrefix = "Bearer "
)

// Transport writes, reads and clears the session cookies.
type Transport struct {
	cfg *config.CookieConfig
}

// NewTransport is the constructor for Transport.
func NewTransport(cfg *config.Config) *Transport {
	return &Transport{cfg: cfg.Cookie}
}

// Bind sets both cookies as http-only.
func (t *Transport) Bind(c echo.Context, tokens *entity.TokenPair) {
	c.SetCookie(t.cookie(AccessTokenCookie, tokens.AccessToken, tokens.AccessExpiresAt))
	c.SetCookie(t.cookie(RefreshTokenCookie, tokens.RefreshToken, tokens.RefreshExpiresAt))
}

// Clear expires both cookies.
func (t *Transport) Clear(c echo.Context) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		cookie := t.cookie(name, "", time.Unix(0, 0).UTC())
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

// AccessToken reads the access token from its cookie, falling back to a bearer header.
func (t *Transport) AccessToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return bearerToken(c.Request())
}

// RefreshToken reads the refresh token from its cookie, falling back to the given body value.
func (t *Transport) RefreshToken(c echo.Context, bodyValue string) string {
	if cookie, err := c.Cookie(RefreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return strings.TrimSpace(bodyValue)
}

func (t *Transport) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     t.cfg.Path,
		Domain:   t.cfg.Domain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   t.cfg.Secure,
		SameSite: sameSite(t.cfg.SameSite),
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteDefaultMode
	}
}

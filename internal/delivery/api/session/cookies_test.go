package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransport() *Transport {
	return NewTransport(&config.Config{Cookie: &config.CookieConfig{Secure: true, SameSite: "strict", Path: "/"}})
}

func TestTransport_BindAndClear(t *testing.T) {
	tr := newTestTransport()
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	tr.Bind(c, &entity.TokenPair{
		AccessToken:      "acc",
		RefreshToken:     "ref",
		AccessExpiresAt:  time.Now().Add(time.Minute),
		RefreshExpiresAt: time.Now().Add(time.Hour),
	})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, ck := range cookies {
		assert.True(t, ck.HttpOnly)
		assert.True(t, ck.Secure)
		assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	}
	assert.Equal(t, AccessTokenCookie, cookies[0].Name)
	assert.Equal(t, "acc", cookies[0].Value)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	tr.Clear(c)
	for _, ck := range rec.Result().Cookies() {
		assert.Empty(t, ck.Value)
		assert.Equal(t, -1, ck.MaxAge)
	}
}

func TestTransport_TokenSources(t *testing.T) {
	tr := newTestTransport()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer from-header")
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "from-header", tr.AccessToken(c))
	assert.Equal(t, "from-body", tr.RefreshToken(c, " from-body "))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer from-header")
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "from-cookie"})
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "refresh-cookie"})
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "from-cookie", tr.AccessToken(c))
	assert.Equal(t, "refresh-cookie", tr.RefreshToken(c, "from-body"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Empty(t, tr.AccessToken(c))
}

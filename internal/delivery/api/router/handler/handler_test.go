package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"vidtube/config"
	apimiddleware "vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/session"
	"vidtube/internal/delivery/api/upload"
	"vidtube/internal/delivery/api/validator"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Cookie:  &config.CookieConfig{Secure: true, SameSite: "lax", Path: "/"},
		Storage: &config.StorageConfig{TempDir: t.TempDir(), MaxUploadSize: 1 << 20},
	}
}

func withPrincipal(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetPrincipal(c, user)

			return next(c)
		}
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

// stubs

type stubSessions struct {
	usecase.SessionUsecase
	output    *usecase.SessionOutput
	err       error
	presented string
	loggedOut uuid.UUID
}

func (s *stubSessions) Login(context.Context, usecase.LoginInput) (*usecase.SessionOutput, error) {
	return s.output, s.err
}

func (s *stubSessions) Refresh(_ context.Context, token string) (*usecase.SessionOutput, error) {
	s.presented = token
	if s.err != nil {
		return nil, s.err
	}

	return s.output, nil
}

func (s *stubSessions) Logout(_ context.Context, id uuid.UUID) error {
	s.loggedOut = id

	return s.err
}

type stubUsers struct {
	usecase.UserUsecase
	registered usecase.RegisterInput
	staged     map[string]bool
}

func (s *stubUsers) Register(_ context.Context, in usecase.RegisterInput) (*entity.User, error) {
	s.registered = in
	s.staged = map[string]bool{}
	for field, path := range map[string]string{usecase.FieldAvatar: in.Avatar, usecase.FieldCoverImage: in.CoverImage} {
		_, err := os.Stat(path)
		s.staged[field] = path != "" && err == nil
	}

	return &entity.User{
		ID:       uuid.New(),
		Username: in.Username,
		Avatar:   &entity.MediaAsset{RemoteID: "remote/avatar", URL: "https://cdn.example.com/avatar.png"},
	}, nil
}

type stubVideos struct {
	usecase.VideoUsecase
	video   *entity.Video
	updated usecase.UpdateVideoInput
	deleted uuid.UUID
}

func (s *stubVideos) FindVideo(_ context.Context, id uuid.UUID) (*entity.Video, error) {
	if s.video == nil || s.video.ID != id {
		return nil, domainerrors.ErrVideoNotFound
	}

	return s.video, nil
}

func (s *stubVideos) UpdateVideo(_ context.Context, _ uuid.UUID, in usecase.UpdateVideoInput) (*entity.Video, error) {
	s.updated = in
	if in.Title != nil {
		s.video.Title = *in.Title
	}

	return s.video, nil
}

func (s *stubVideos) DeleteVideo(_ context.Context, id uuid.UUID) error {
	s.deleted = id

	return nil
}

func (s *stubVideos) ShareQR(context.Context, uuid.UUID) ([]byte, error) {
	return []byte("\x89PNG"), nil
}

// user handler

func newTestUserHandler(t *testing.T, sessions *stubSessions, users *stubUsers) *UserHandler {
	t.Helper()

	cfg := newTestConfig(t)

	return NewUserHandler(UserHandlerParams{
		UserUC:    users,
		SessionUC: sessions,
		Transport: session.NewTransport(cfg),
		Intake:    upload.NewIntake(cfg, newDiscardLogger()),
		Logger:    newDiscardLogger(),
	})
}

func testSessionOutput() *usecase.SessionOutput {
	return &usecase.SessionOutput{
		User: &entity.User{ID: uuid.New(), Username: "alice"},
		Tokens: &entity.TokenPair{
			AccessToken:      "access-1",
			RefreshToken:     "refresh-1",
			AccessExpiresAt:  time.Now().Add(time.Minute),
			RefreshExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func TestUserHandler_Login(t *testing.T) {
	sessions := &stubSessions{output: testSessionOutput()}
	h := newTestUserHandler(t, sessions, &stubUsers{})
	e := newTestEcho()
	e.POST("/login", h.Login)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/login", `{"username":"alice","password":"pw"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var body SessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, "access-1", body.AccessToken)
	assert.Equal(t, "refresh-1", body.RefreshToken)
	assert.Equal(t, "alice", body.User.Username)

	cookies := map[string]*http.Cookie{}
	for _, ck := range rec.Result().Cookies() {
		cookies[ck.Name] = ck
	}
	require.Contains(t, cookies, session.AccessTokenCookie)
	require.Contains(t, cookies, session.RefreshTokenCookie)
	assert.True(t, cookies[session.RefreshTokenCookie].HttpOnly)
}

func TestUserHandler_Login_RequiresPassword(t *testing.T) {
	h := newTestUserHandler(t, &stubSessions{output: testSessionOutput()}, &stubUsers{})
	e := newTestEcho()
	e.POST("/login", h.Login)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/login", `{"username":"alice"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decode(t, rec).Error.Code)
}

func TestUserHandler_RefreshToken_PrefersCookie(t *testing.T) {
	sessions := &stubSessions{output: testSessionOutput()}
	h := newTestUserHandler(t, sessions, &stubUsers{})
	e := newTestEcho()
	e.POST("/refresh", h.RefreshToken)

	req := jsonRequest(http.MethodPost, "/refresh", `{"refreshToken":"from-body"}`)
	req.AddCookie(&http.Cookie{Name: session.RefreshTokenCookie, Value: "from-cookie"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "from-cookie", sessions.presented)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/refresh", `{"refreshToken":"from-body"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "from-body", sessions.presented)
}

func TestUserHandler_RefreshToken_Reused(t *testing.T) {
	h := newTestUserHandler(t, &stubSessions{err: domainerrors.ErrRefreshTokenReused}, &stubUsers{})
	e := newTestEcho()
	e.POST("/refresh", h.RefreshToken)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/refresh", `{"refreshToken":"old"}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrRefreshTokenReused.ErrorCode(), decode(t, rec).Error.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestUserHandler_Logout(t *testing.T) {
	user := &entity.User{ID: uuid.New()}

	t.Run("Clears cookies after the store is updated", func(t *testing.T) {
		sessions := &stubSessions{}
		h := newTestUserHandler(t, sessions, &stubUsers{})
		e := newTestEcho()
		e.POST("/logout", h.Logout, withPrincipal(user))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID, sessions.loggedOut)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 2)
		for _, ck := range cookies {
			assert.Equal(t, -1, ck.MaxAge)
		}
	})

	t.Run("Store failure is reported and cookies are kept", func(t *testing.T) {
		sessions := &stubSessions{err: domainerrors.NewDatabaseExecuteError(assert.AnError, "clear fingerprint")}
		h := newTestUserHandler(t, sessions, &stubUsers{})
		e := newTestEcho()
		e.POST("/logout", h.Logout, withPrincipal(user))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestUserHandler_Register_StagesAndReleasesFiles(t *testing.T) {
	users := &stubUsers{}
	h := newTestUserHandler(t, &stubSessions{}, users)
	e := newTestEcho()
	e.POST("/register", h.Register)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for field, value := range map[string]string{
		"fullName": "Alice Doe",
		"email":    "alice@example.com",
		"username": "Alice",
		"password": "pw",
	} {
		require.NoError(t, w.WriteField(field, value))
	}
	fw, err := w.CreateFormFile(usecase.FieldAvatar, "me.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/register", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Equal(t, "Alice", users.registered.Username)
	assert.True(t, users.staged[usecase.FieldAvatar])
	assert.False(t, users.staged[usecase.FieldCoverImage])
	_, err = os.Stat(users.registered.Avatar)
	assert.True(t, os.IsNotExist(err), "staged file must be released")

	assert.NotContains(t, rec.Body.String(), "remote/avatar")
	assert.Contains(t, rec.Body.String(), "https://cdn.example.com/avatar.png")
}

// video handler with the ownership guard in front

func newTestVideoRoutes(t *testing.T, videos *stubVideos, viewer *entity.User) *echo.Echo {
	t.Helper()

	cfg := newTestConfig(t)
	h := NewVideoHandler(VideoHandlerParams{
		VideoUC: videos,
		Intake:  upload.NewIntake(cfg, newDiscardLogger()),
		Logger:  newDiscardLogger(),
	})
	owns := apimiddleware.RequireOwner("videoId", apimiddleware.Loader(videos.FindVideo))

	e := newTestEcho()
	g := e.Group("/videos", withPrincipal(viewer))
	g.PATCH("/:videoId", h.UpdateVideo, owns)
	g.DELETE("/:videoId", h.DeleteVideo, owns)
	g.GET("/:videoId/share/qr", h.ShareQR)

	return e
}

func TestVideoHandler_UpdateVideo_JSON(t *testing.T) {
	owner := &entity.User{ID: uuid.New()}
	videos := &stubVideos{video: &entity.Video{
		ID:        uuid.New(),
		Title:     "old",
		OwnerID:   owner.ID,
		VideoFile: &entity.MediaAsset{RemoteID: "remote/clip", URL: "https://cdn.example.com/clip.mp4"},
	}}
	e := newTestVideoRoutes(t, videos, owner)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPatch, "/videos/"+videos.video.ID.String(), `{"title":"new"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NotNil(t, videos.updated.Title)
	assert.Equal(t, "new", *videos.updated.Title)
	assert.Nil(t, videos.updated.Description)
	assert.Empty(t, videos.updated.Thumbnail)

	var view VideoView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "new", view.Title)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", view.VideoFile)
	assert.NotContains(t, rec.Body.String(), "remote/clip")
}

func TestVideoHandler_UpdateVideo_MultipartThumbnail(t *testing.T) {
	owner := &entity.User{ID: uuid.New()}
	videos := &stubVideos{video: &entity.Video{ID: uuid.New(), OwnerID: owner.ID}}
	e := newTestVideoRoutes(t, videos, owner)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("description", ""))
	fw, err := w.CreateFormFile(usecase.FieldThumbnail, "t.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPatch, "/videos/"+videos.video.ID.String(), &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Nil(t, videos.updated.Title)
	require.NotNil(t, videos.updated.Description)
	assert.Empty(t, *videos.updated.Description)
	assert.NotEmpty(t, videos.updated.Thumbnail)
}

func TestVideoHandler_DeleteVideo_Ownership(t *testing.T) {
	owner := &entity.User{ID: uuid.New()}
	stranger := &entity.User{ID: uuid.New()}
	videos := &stubVideos{video: &entity.Video{ID: uuid.New(), OwnerID: owner.ID}}
	target := "/videos/" + videos.video.ID.String()

	rec := httptest.NewRecorder()
	newTestVideoRoutes(t, videos, stranger).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, uuid.Nil, videos.deleted)

	rec = httptest.NewRecorder()
	newTestVideoRoutes(t, videos, owner).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/videos/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	newTestVideoRoutes(t, videos, owner).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, videos.video.ID, videos.deleted)
}

func TestVideoHandler_ShareQR(t *testing.T) {
	videos := &stubVideos{}
	e := newTestVideoRoutes(t, videos, &entity.User{ID: uuid.New()})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos/"+uuid.NewString()+"/share/qr", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos/nope/share/qr", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	h := &HealthHandler{started: time.Now().Add(-time.Minute), logger: newDiscardLogger()}
	e := newTestEcho()
	e.GET("/healthcheck", h.HealthCheck)

	h.ping = func(context.Context) error { return nil }
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var status HealthStatus
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &status))
	assert.Equal(t, "up", status.Database)
	assert.GreaterOrEqual(t, status.Uptime, 60.0)

	h.ping = func(context.Context) error { return assert.AnError }
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

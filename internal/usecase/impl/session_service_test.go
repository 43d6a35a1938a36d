package impl

import (
	"context"
	"sync"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"
	"vidtube/internal/infra/auth"
	"vidtube/internal/infra/metrics"
	"vidtube/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	users   *fakeUserRepo
	metrics *metrics.Metrics
	service usecase.SessionUsecase
	user    *entity.User
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	cfg := newTestConfig()
	hasher := auth.NewBcryptHasher(cfg)
	hash, err := hasher.Hash("p1")
	require.NoError(t, err)

	users := newFakeUserRepo()
	user := users.put(&entity.User{Username: "ana", Email: "a@x.com", FullName: "Ana", PasswordHash: hash})
	m := metrics.New()

	return &sessionFixture{
		users:   users,
		metrics: m,
		user:    user,
		service: NewSessionService(SessionServiceParams{
			UserRepo:     users,
			Hasher:       hasher,
			TokenService: newTestTokenService(t),
			Metrics:      m,
			Logger:       newDiscardLogger(),
		}),
	}
}

func assertHTTPCode(t *testing.T, err error, code int) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.HTTPCode())
}

func TestSessionService_LoginThenAuthenticate(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	out, err := sf.service.Login(ctx, usecase.LoginInput{Username: "ANA", Password: "p1"})
	require.NoError(t, err)
	assert.Empty(t, out.User.PasswordHash)
	assert.Empty(t, out.User.RefreshTokenHash)
	assert.NotEmpty(t, sf.users.get(sf.user.ID).RefreshTokenHash)

	principal, err := sf.service.Authenticate(ctx, out.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, sf.user.ID, principal.ID)
	assert.Empty(t, principal.PasswordHash)
}

func TestSessionService_Login_ByEmail(t *testing.T) {
	sf := newSessionFixture(t)

	out, err := sf.service.Login(context.Background(), usecase.LoginInput{Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)
	assert.Equal(t, sf.user.ID, out.User.ID)
}

func TestSessionService_Login_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.LoginInput
		want  error
		code  int
	}{
		{"unknown user", usecase.LoginInput{Username: "bob", Password: "p1"}, domainerrors.ErrUserNotFound, 404},
		{"wrong password", usecase.LoginInput{Username: "ana", Password: "nope"}, domainerrors.ErrInvalidCredentials, 401},
		{"no identifier", usecase.LoginInput{Password: "p1"}, domainerrors.ErrValidationFailed, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := newSessionFixture(t)

			_, err := sf.service.Login(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			assertHTTPCode(t, err, tt.code)
		})
	}
}

func TestSessionService_Refresh_RotatesAndRejectsReplay(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	login, err := sf.service.Login(ctx, usecase.LoginInput{Username: "ana", Password: "p1"})
	require.NoError(t, err)

	refreshed, err := sf.service.Refresh(ctx, login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.Tokens.RefreshToken, refreshed.Tokens.RefreshToken)

	_, err = sf.service.Refresh(ctx, login.Tokens.RefreshToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))
	assertHTTPCode(t, err, 401)

	// The rotated token keeps working.
	_, err = sf.service.Refresh(ctx, refreshed.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.InDelta(t, 1, counterValue(t, sf.metrics.Registry(), "vidtube_session_rotations_total", metrics.RotationReused), 0)
}

func TestSessionService_Refresh_RejectsAccessToken(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	login, err := sf.service.Login(ctx, usecase.LoginInput{Username: "ana", Password: "p1"})
	require.NoError(t, err)

	_, err = sf.service.Refresh(ctx, login.Tokens.AccessToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestSessionService_Rotate_ConcurrentCallsOnlyOneWins(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	_, err := sf.service.Login(ctx, usecase.LoginInput{Username: "ana", Password: "p1"})
	require.NoError(t, err)
	snapshot := sf.users.get(sf.user.ID)

	const workers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		staleErr int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := sf.service.Rotate(ctx, snapshot)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, domainerrors.ErrRefreshTokenStale):
				staleErr++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, workers-1, staleErr)
	assert.NotEqual(t, snapshot.RefreshTokenHash, sf.users.get(sf.user.ID).RefreshTokenHash)
}

func TestSessionService_LogoutThenRefreshFails(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	login, err := sf.service.Login(ctx, usecase.LoginInput{Username: "ana", Password: "p1"})
	require.NoError(t, err)

	require.NoError(t, sf.service.Logout(ctx, sf.user.ID))
	assert.Empty(t, sf.users.get(sf.user.ID).RefreshTokenHash)

	_, err = sf.service.Refresh(ctx, login.Tokens.RefreshToken)
	require.Error(t, err)
	assertHTTPCode(t, err, 401)
}

func TestSessionService_Logout_StoreFailure(t *testing.T) {
	sf := newSessionFixture(t)
	sf.users.clearErr = errors.New("db down")

	err := sf.service.Logout(context.Background(), sf.user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestSessionService_Authenticate_Rejections(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	_, err := sf.service.Authenticate(ctx, "")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = sf.service.Authenticate(ctx, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	login, err := sf.service.Login(ctx, usecase.LoginInput{Username: "ana", Password: "p1"})
	require.NoError(t, err)
	_, err = sf.service.Authenticate(ctx, login.Tokens.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

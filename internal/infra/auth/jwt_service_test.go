package auth

import (
	"testing"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 240 * time.Hour,
		},
	}
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndVerifyPair(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	pair, err := svc.IssuePair(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

	accessClaims, err := svc.Verify(pair.AccessToken, entity.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.SubjectID)
	assert.Equal(t, entity.TokenKindAccess, accessClaims.Kind)
	assert.NotEmpty(t, accessClaims.TokenID)

	refreshClaims, err := svc.Verify(pair.RefreshToken, entity.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.SubjectID)
	assert.Equal(t, entity.TokenKindRefresh, refreshClaims.Kind)
}

func TestJWTService_KindsAreNotInterchangeable(t *testing.T) {
	svc := newTestJWTService(t)

	pair, err := svc.IssuePair(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(pair.RefreshToken, entity.TokenKindAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = svc.Verify(pair.AccessToken, entity.TokenKindRefresh)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongTypeClaimWithRightSecret(t *testing.T) {
	svc := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"type": "refresh",
	})
	signed, err := token.SignedString(svc.accessSecret)
	require.NoError(t, err)

	_, err = svc.Verify(signed, entity.TokenKindAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	issuedAt := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, _, err := svc.Issue(uuid.New(), entity.TokenKindAccess)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token, entity.TokenKindAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	// Test invalid token - using clearly non-JWT format
	claims, err := svc.Verify("clearly-not-a-jwt-token-format", entity.TokenKindAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"type": "access",
	})
	signed, err := token.SignedString(svc.accessSecret)
	require.NoError(t, err)

	_, err = svc.Verify(signed, entity.TokenKindAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_SuccessiveTokensDiffer(t *testing.T) {
	svc := newTestJWTService(t)
	fixed := time.Now()
	svc.now = func() time.Time { return fixed }
	userID := uuid.New()

	first, _, err := svc.Issue(userID, entity.TokenKindRefresh)
	require.NoError(t, err)
	second, _, err := svc.Issue(userID, entity.TokenKindRefresh)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, svc.Fingerprint(first), svc.Fingerprint(second))
}

func TestJWTService_Fingerprint(t *testing.T) {
	svc := newTestJWTService(t)

	fp := svc.Fingerprint("token")
	assert.Len(t, fp, 64)
	assert.Equal(t, fp, svc.Fingerprint("token"))
	assert.NotEqual(t, fp, svc.Fingerprint("token2"))
}

func TestNewJWTService_RequiresConfiguration(t *testing.T) {
	cfg := testJWTConfig()
	cfg.SecretKey.Refresh = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = testJWTConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)

	cfg = testJWTConfig()
	cfg.Auth = nil
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_TTL(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, 15*time.Minute, svc.TTL(entity.TokenKindAccess))
	assert.Equal(t, 240*time.Hour, svc.TTL(entity.TokenKindRefresh))
	assert.Zero(t, svc.TTL(entity.TokenKind("other")))
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
)

const claimType = "type"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 {
		return nil, errors.New("token lifetimes must be configured")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
		now:           time.Now,
	}, nil
}

// Issue signs a token of the given kind with that kind's secret and lifetime.
func (s *jwtService) Issue(subjectID uuid.UUID, kind entity.TokenKind) (string, time.Time, error) {
	secret, ttl, err := s.policy(kind)
	if err != nil {
		return "", time.Time{}, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)
	claims := jwt.MapClaims{
		"sub":     subjectID.String(), // Subject (who the token is for)
		"iat":     issuedAt.Unix(),    // Issued At
		"exp":     expiresAt.Unix(),   // Expiration Time
		"jti":     uuid.NewString(),   // Distinguishes tokens minted within the same second
		claimType: kind.String(),      // Type of token (access or refresh)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, errors.Wrapf(err, "failed to sign %s token", kind)
	}

	return signed, expiresAt, nil
}

// IssuePair creates a new access token and refresh token for a given user.
func (s *jwtService) IssuePair(subjectID uuid.UUID) (*entity.TokenPair, error) {
	accessToken, accessExp, err := s.Issue(subjectID, entity.TokenKindAccess)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExp, err := s.Issue(subjectID, entity.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// Verify checks the validity of a token string against the secret of the expected kind.
func (s *jwtService) Verify(tokenString string, kind entity.TokenKind) (*entity.TokenClaims, error) {
	secret, _, err := s.policy(kind)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	if t, _ := claims[claimType].(string); t != kind.String() {
		return nil, errors.Wrapf(domainerrors.ErrTokenInvalid, "expected %s token", kind)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "missing subject")
	}
	subjectID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "malformed subject")
	}

	out := &entity.TokenClaims{SubjectID: subjectID, Kind: kind}
	if jti, ok := claims["jti"].(string); ok {
		out.TokenID = jti
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}

// Fingerprint returns the hex SHA-256 digest of the token.
func (s *jwtService) Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// TTL returns the configured duration for the token kind.
func (s *jwtService) TTL(kind entity.TokenKind) time.Duration {
	_, ttl, err := s.policy(kind)
	if err != nil {
		return 0
	}

	return ttl
}

func (s *jwtService) policy(kind entity.TokenKind) ([]byte, time.Duration, error) {
	switch kind {
	case entity.TokenKindAccess:
		return s.accessSecret, s.accessTTL, nil
	case entity.TokenKindRefresh:
		return s.refreshSecret, s.refreshTTL, nil
	default:
		return nil, 0, errors.Errorf("unknown token kind %q", kind)
	}
}

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mkaraca/campushub/internal/pkg/apperrors"
)

// TokenKind discriminates access tokens from refresh tokens. The two kinds
// are signed with independent secrets so that compromise of one cannot
// forge the other.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

var ErrInvalidFormat = errors.New("invalid token format")

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	AccessSecret    string
	RefreshSecret   string
	AccessTokenExp  time.Duration
	RefreshTokenExp time.Duration
	TokenIssuer     string
}

// JWTService issues and verifies signed, self-expiring tokens. It keeps no
// server-side token state; refresh revocation is done by the caller through
// the stored refresh-token comparison.
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{config: config}
}

// Claims defines token content
type Claims struct {
	UserID int64     `json:"userId"`
	Kind   TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

func (s *JWTService) secretFor(kind TokenKind) []byte {
	if kind == RefreshToken {
		return []byte(s.config.RefreshSecret)
	}
	return []byte(s.config.AccessSecret)
}

func (s *JWTService) lifetimeFor(kind TokenKind) time.Duration {
	if kind == RefreshToken {
		return s.config.RefreshTokenExp
	}
	return s.config.AccessTokenExp
}

// Issue creates a signed token of the given kind for a user
func (s *JWTService) Issue(userID int64, kind TokenKind) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetimeFor(kind))),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretFor(kind))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return signed, nil
}

// IssuePair creates an access and refresh token pair for a user
func (s *JWTService) IssuePair(userID int64) (accessToken, refreshToken string, err error) {
	accessToken, err = s.Issue(userID, AccessToken)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = s.Issue(userID, RefreshToken)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// Verify validates a token of the given kind and returns the user ID it was
// issued for. Expired tokens fail with apperrors.ErrTokenExpired, everything
// else (bad signature, wrong kind, malformed) with apperrors.ErrTokenInvalid.
func (s *JWTService) Verify(tokenString string, kind TokenKind) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretFor(kind), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperrors.ErrTokenExpired
		}
		return 0, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, apperrors.ErrTokenInvalid
	}
	if claims.Kind != kind || claims.UserID <= 0 {
		return 0, apperrors.ErrTokenInvalid
	}

	return claims.UserID, nil
}

// AccessTokenTTL returns the configured access token lifetime
func (s *JWTService) AccessTokenTTL() time.Duration {
	return s.config.AccessTokenExp
}

// RefreshTokenTTL returns the configured refresh token lifetime
func (s *JWTService) RefreshTokenTTL() time.Duration {
	return s.config.RefreshTokenExp
}

// ExtractBearerToken extracts the token from an Authorization header value
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}
	return authHeader, nil
}

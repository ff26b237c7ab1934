package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/mkaraca/campushub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		AccessSecret:    "test-access-secret",
		RefreshSecret:   "test-refresh-secret",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 168 * time.Hour,
		TokenIssuer:     "campushub-test",
	})
}

func TestIssuePairRoundTrip(t *testing.T) {
	svc := newTestService()

	access, refresh, err := svc.IssuePair(42)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	userID, err := svc.Verify(access, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	userID, err = svc.Verify(refresh, RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyRejectsWrongKind(t *testing.T) {
	svc := newTestService()

	access, refresh, err := svc.IssuePair(7)
	require.NoError(t, err)

	// An access token must not pass as a refresh token and vice versa.
	_, err = svc.Verify(access, RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = svc.Verify(refresh, AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		AccessSecret:    "test-access-secret",
		RefreshSecret:   "test-refresh-secret",
		AccessTokenExp:  -time.Minute,
		RefreshTokenExp: -time.Minute,
		TokenIssuer:     "campushub-test",
	})

	access, err := svc.Issue(5, AccessToken)
	require.NoError(t, err)

	_, err = svc.Verify(access, AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := newTestService()

	access, err := svc.Issue(5, AccessToken)
	require.NoError(t, err)

	parts := strings.Split(access, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = svc.Verify(tampered, AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestVerifyRejectsTokenFromDifferentSecret(t *testing.T) {
	other := NewJWTService(JWTConfig{
		AccessSecret:    "completely-different",
		RefreshSecret:   "also-different",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 168 * time.Hour,
		TokenIssuer:     "campushub-test",
	})
	foreign, err := other.Issue(5, AccessToken)
	require.NoError(t, err)

	_, err = newTestService().Verify(foreign, AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := newTestService().Verify("not.a.token", AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

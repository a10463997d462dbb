// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b2bmarket/backend/internal/config"
	"github.com/b2bmarket/backend/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:      "test-secret-at-least-32-bytes-long!!",
		TokenExpire: 7 * 24 * time.Hour,
		Issuer:      "b2bmarket",
		Audience:    "b2bmarket-api",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := tm.CreateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tm.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenExpire = -time.Minute

	tm, err := NewTokenManager(cfg)
	require.NoError(t, err)

	token, err := tm.CreateToken(42)
	require.NoError(t, err)

	_, err = tm.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestTokenSignedWithDifferentSecretRejected(t *testing.T) {
	tm, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-secret-value!"
	other, err := NewTokenManager(otherCfg)
	require.NoError(t, err)

	token, err := other.CreateToken(42)
	require.NoError(t, err)

	_, err = tm.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestGarbageTokenRejected(t *testing.T) {
	tm, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	_, err = tm.VerifyToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestWrongAudienceRejected(t *testing.T) {
	issuing := testJWTConfig()
	issuing.Audience = "some-other-service"

	issuer, err := NewTokenManager(issuing)
	require.NoError(t, err)

	token, err := issuer.CreateToken(42)
	require.NoError(t, err)

	tm, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	_, err = tm.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

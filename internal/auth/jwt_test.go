// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisRono/chavfana-backend/internal/config"
	"github.com/DennisRono/chavfana-backend/internal/core"
)

func newTestJWTManager(t *testing.T, expire time.Duration) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:    privatePath,
		PublicKeyPath:     publicPath,
		AccessTokenExpire: expire,
		Issuer:            "chavfana",
		Audience:          "chavfana-api",
	})
	require.NoError(t, err)

	return manager
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := newTestJWTManager(t, time.Hour)

	token, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "user-1",
		Role:   RoleFarmer,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, RoleFarmer, claims.Role)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	manager := newTestJWTManager(t, -time.Minute)

	token, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "user-1",
		Role:   RoleFarmer,
	})
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifyAccessTokenGarbage(t *testing.T) {
	manager := newTestJWTManager(t, time.Hour)

	_, err := manager.VerifyAccessToken(context.Background(), "not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyAccessTokenWrongKey(t *testing.T) {
	issuing := newTestJWTManager(t, time.Hour)
	verifying := newTestJWTManager(t, time.Hour)

	token, err := issuing.CreateAccessToken(AccessTokenClaims{
		UserID: "user-1",
		Role:   RoleFarmer,
	})
	require.NoError(t, err)

	_, err = verifying.VerifyAccessToken(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestKeyIDStable(t *testing.T) {
	manager := newTestJWTManager(t, time.Hour)
	assert.NotEmpty(t, manager.GetKeyID())
	assert.NotNil(t, manager.GetPublicKey())
}

package auth

import (
	"testing"

	"wayfarer/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	svc, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "access-secret", Refresh: "refresh-secret"},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "", Refresh: "refresh-secret"},
	})
	require.Error(t, err)

	_, err = NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "access-secret", Refresh: ""},
	})
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RejectsRefreshTokenAsAccess(t *testing.T) {
	svc := newTestJWTService(t)

	_, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret.
	_, err = svc.ValidateAccessToken(refreshToken)
	require.Error(t, err)
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateAccessToken("not-a-jwt")
	require.Error(t, err)
}

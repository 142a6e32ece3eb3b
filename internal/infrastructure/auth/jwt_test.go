package auth

import (
	"context"
	"testing"
	"time"

	"github.com/notaventas/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-that-is-long-enough-123456",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 168 * time.Hour,
		Issuer:                 "notaventas-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:   userID,
		Username: "mgonzalez",
		IsAdmin:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "mgonzalez", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	got, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_TokenTypeMismatch(t *testing.T) {
	svc := newTestService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Username: "op"})
	require.NoError(t, err)

	// a refresh token must not pass access validation and vice versa
	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)
	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenPair(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: userID, Username: "op", IsAdmin: false})
	require.NoError(t, err)

	newPair, err := svc.RefreshTokenPair(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(newPair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewJWTService(config.JWTConfig{
		Secret:                 "a-completely-different-secret-0987654321",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "other",
	})
	pair, err := other.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Minute))
	blacklisted, err = bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	issuedBefore := time.Now().Add(-time.Second)
	require.NoError(t, bl.AddUserTokensToBlacklist(ctx, "user-1", time.Minute))

	invalidated, err := bl.IsUserTokenInvalidated(ctx, "user-1", issuedBefore)
	require.NoError(t, err)
	assert.True(t, invalidated)

	invalidated, err = bl.IsUserTokenInvalidated(ctx, "user-1", time.Now().Add(time.Second))
	require.NoError(t, err)
	assert.False(t, invalidated)
}

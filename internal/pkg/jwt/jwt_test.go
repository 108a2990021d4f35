package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/domain/user"
)

func testUser() user.User {
	return user.User{
		ID:    "user-1",
		Email: "dev@example.com",
		Role:  user.RoleManager,
	}
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("secret", "1h", "168h")

	token, expiresAt, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	identity, err := svc.VerifyCredential(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "dev@example.com", identity.Email)
	assert.Equal(t, user.RoleManager, identity.Role)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("secret", "-1h", "168h")

	token, _, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.VerifyCredential(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	t.Parallel()
	issuer := NewJWTService("secret-a", "1h", "168h")
	verifier := NewJWTService("secret-b", "1h", "168h")

	token, _, err := issuer.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = verifier.VerifyCredential(context.Background(), token)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenIsNotAccessToken(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("secret", "1h", "168h")

	refresh, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.VerifyCredential(context.Background(), refresh)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	userID, err := svc.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestJWTService_Revocation(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("secret", "1h", "168h")

	refresh, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(refresh))
	svc.RevokeToken(refresh)
	assert.True(t, svc.IsTokenRevoked(refresh))

	_, err = svc.VerifyRefreshToken(refresh)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestStaticVerifier(t *testing.T) {
	t.Parallel()
	verifier := NewStaticVerifier(map[string]auth.Identity{
		"token-admin": {UserID: "u-1", Email: "admin@example.com", Role: user.RoleAdmin},
	})

	identity, err := verifier.VerifyCredential(context.Background(), "token-admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, identity.Role)

	_, err = verifier.VerifyCredential(context.Background(), "unknown")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

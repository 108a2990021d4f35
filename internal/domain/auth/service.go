package auth

import "context"

// AuthService defines the login surface.
type AuthService interface {
	// Register creates an employee account with a bcrypt password hash.
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login verifies credentials and issues an access/refresh token pair.
	// Deactivated accounts fail with ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogle exchanges a verified Google email for a token pair.
	// Fails with ErrOAuthEmailNotFound when no active account matches.
	LoginWithGoogle(ctx context.Context, email string) (TokenResponse, error)
}

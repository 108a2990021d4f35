package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/domain/user"
	"github.com/induspriya/attendance-portal/internal/pkg/jwt"
)

type authService struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register implements auth.AuthService. New accounts start as employees;
// role escalation goes through user administration.
func (s *authService) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	hashStr := string(hash)

	u := user.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: &hashStr,
		Role:         user.RoleEmployee,
		Department:   req.Department,
		Position:     req.Position,
		IsActive:     true,
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(created)
}

// Login implements auth.AuthService. A deactivated account and a wrong
// password produce the same error, so callers cannot probe account state.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if !u.IsActive || u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Refresh implements auth.AuthService. The spent refresh token is revoked so
// each token funds exactly one rotation.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := s.jwtService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}
	if !u.IsActive {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

// Logout implements auth.AuthService.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.jwtService.VerifyRefreshToken(refreshToken); err != nil {
		return err
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// LoginWithGoogle implements auth.AuthService. The email has already been
// verified against Google; no password check applies.
func (s *authService) LoginWithGoogle(ctx context.Context, email string) (auth.TokenResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrOAuthEmailNotFound
		}
		return auth.TokenResponse{}, err
	}
	if !u.IsActive {
		return auth.TokenResponse{}, auth.ErrOAuthEmailNotFound
	}

	return s.issueTokens(u)
}

func (s *authService) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
		User:                  toUserResponse(u),
	}, nil
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Department: u.Department,
		Position:   u.Position,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

package jwt

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/domain/user"
)

type Service interface {
	auth.Verifier

	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	VerifyRefreshToken(tokenString string) (userID string, err error)
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessExpiration  string
	refreshExpiration string
	tokenAuth         *jwtauth.JWTAuth
	revokedTokens     map[string]int64
	mu                sync.RWMutex
}

func NewJWTService(secretKey, accessExpiration, refreshExpiration string) *JWTService {
	return &JWTService{
		accessExpiration:  accessExpiration,
		refreshExpiration: refreshExpiration,
		tokenAuth:         jwtauth.New("HS256", []byte(secretKey), nil),
		revokedTokens:     make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(u user.User) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    string(u.Role),
		"type":    "access",
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.refreshExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "refresh",
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// VerifyCredential implements auth.Verifier for access tokens.
func (j *JWTService) VerifyCredential(ctx context.Context, tokenString string) (auth.Identity, error) {
	token, err := j.decode(tokenString, "access")
	if err != nil {
		return auth.Identity{}, err
	}

	userID, _ := token.Get("user_id")
	email, _ := token.Get("email")
	role, _ := token.Get("role")

	userIDStr, ok := userID.(string)
	if !ok || userIDStr == "" {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	roleStr, ok := role.(string)
	if !ok || !user.ValidRole(user.Role(roleStr)) {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	emailStr, _ := email.(string)

	return auth.Identity{
		UserID: userIDStr,
		Email:  emailStr,
		Role:   user.Role(roleStr),
	}, nil
}

func (j *JWTService) VerifyRefreshToken(tokenString string) (string, error) {
	if j.IsTokenRevoked(tokenString) {
		return "", auth.ErrRefreshTokenRevoked
	}

	token, err := j.decode(tokenString, "refresh")
	if err != nil {
		return "", err
	}

	userID, ok := token.Get("user_id")
	if !ok {
		return "", auth.ErrInvalidToken
	}
	userIDStr, ok := userID.(string)
	if !ok || userIDStr == "" {
		return "", auth.ErrInvalidToken
	}

	return userIDStr, nil
}

func (j *JWTService) decode(tokenString, wantType string) (jwt.Token, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		if jwt.IsValidationError(err) {
			return nil, auth.ErrTokenExpired
		}
		return nil, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != wantType {
		return nil, auth.ErrInvalidToken
	}

	return token, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

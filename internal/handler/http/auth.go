package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/handler/http/response"
	"github.com/induspriya/attendance-portal/internal/pkg/jwt"
	"github.com/induspriya/attendance-portal/internal/pkg/oauth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService   auth.AuthService
	jwtService    jwt.Service
	googleService oauth.GoogleService // nil when Google login is not configured
	frontendURL   string
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service, googleService oauth.GoogleService, frontendURL string) AuthHandler {
	return &authHandlerImpl{
		authService:   authService,
		jwtService:    jwtService,
		googleService: googleService,
		frontendURL:   frontendURL,
	}
}

// Register implements AuthHandler.
func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresAt))
	response.Created(w, "Account created", result)
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresAt))
	response.SuccessWithMessage(w, "Login successful", result)
}

// RefreshToken implements AuthHandler. The refresh token travels in an
// HttpOnly cookie only.
func (h *authHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Missing refresh token")
		return
	}

	result, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresAt))
	response.SuccessWithMessage(w, "Token refreshed", result)
}

// Logout implements AuthHandler.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Missing refresh token")
		return
	}

	if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
		response.HandleError(w, err)
		return
	}

	expired := h.jwtService.RefreshTokenCookie("", 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out", nil)
}

// LoginWithGoogle implements AuthHandler. Redirects to Google's consent
// screen with a state cookie for the callback to verify.
func (h *authHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if h.googleService == nil {
		response.HandleError(w, auth.ErrOAuthDisabled)
		return
	}

	state := h.googleService.GenerateState()
	if state == "" {
		response.InternalServerError(w, "Failed to start Google sign-in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/api/auth",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (h *authHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	if h.googleService == nil {
		response.HandleError(w, auth.ErrOAuthDisabled)
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		response.Unauthorized(w, "OAuth state mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	token, err := h.googleService.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("Failed to exchange Google authorization code", "error", err)
		response.Unauthorized(w, "Google sign-in failed")
		return
	}

	googleUser, err := h.googleService.FetchUser(r.Context(), token)
	if err != nil {
		slog.Error("Failed to fetch Google user info", "error", err)
		response.Unauthorized(w, "Google sign-in failed")
		return
	}
	if !googleUser.VerifiedEmail {
		response.Unauthorized(w, "Google account email is not verified")
		return
	}

	result, err := h.authService.LoginWithGoogle(r.Context(), googleUser.Email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresAt))
	response.SuccessWithMessage(w, "Login successful", result)
}

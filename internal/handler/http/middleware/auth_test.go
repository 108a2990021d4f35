package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/domain/user"
	"github.com/induspriya/attendance-portal/internal/pkg/jwt"
)

func testVerifier() auth.Verifier {
	return jwt.NewStaticVerifier(map[string]auth.Identity{
		"employee-token": {UserID: "u-emp", Email: "emp@example.com", Role: user.RoleEmployee},
		"manager-token":  {UserID: "u-mgr", Email: "mgr@example.com", Role: user.RoleManager},
		"admin-token":    {UserID: "u-adm", Email: "adm@example.com", Role: user.RoleAdmin},
	})
}

func identityEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(identity.UserID))
	})
}

func TestAuthRequired_ValidToken(t *testing.T) {
	t.Parallel()
	handler := AuthRequired(testVerifier())(identityEcho())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer employee-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-emp", rec.Body.String())
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	t.Parallel()
	handler := AuthRequired(testVerifier())(identityEcho())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_UnknownToken(t *testing.T) {
	t.Parallel()
	handler := AuthRequired(testVerifier())(identityEcho())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_Matrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		roles    []user.Role
		wantCode int
	}{
		{"employee blocked from manager route", "employee-token", []user.Role{user.RoleManager}, http.StatusForbidden},
		{"manager allowed on manager route", "manager-token", []user.Role{user.RoleManager}, http.StatusOK},
		{"admin passes any role gate", "admin-token", []user.Role{user.RoleHR}, http.StatusOK},
		{"manager blocked from hr route", "manager-token", []user.Role{user.RoleHR}, http.StatusForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := AuthRequired(testVerifier())(RequireRole(tt.roles...)(identityEcho()))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()
	handler := AuthRequired(testVerifier())(RequirePermission(user.PermissionLeaveManagerReview)(identityEcho()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer manager-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer employee-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

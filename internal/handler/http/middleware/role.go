package middleware

import (
	"fmt"
	"net/http"

	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/domain/user"
	"github.com/induspriya/attendance-portal/internal/handler/http/response"
)

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)(next)
}

// RequireRole allows any of the given roles; admin always passes.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.IdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Missing bearer token")
				return
			}

			if identity.Role == user.RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}

			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, fmt.Sprintf("Access requires one of roles: %s", rolesString(roles)))
		})
	}
}

// RequirePermission checks the role-permission matrix.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.IdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Missing bearer token")
				return
			}

			if !user.HasPermission(identity.Role, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, identity.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rolesString(roles []user.Role) string {
	s := ""
	for i, role := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(role)
	}
	return s
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/handler/http/response"
)

// AuthRequired verifies the bearer credential and stores the resulting
// identity in the request context. Downstream handlers read it with
// auth.IdentityFromContext.
func AuthRequired(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				response.Unauthorized(w, "Missing bearer token")
				return
			}

			identity, err := verifier.VerifyCredential(r.Context(), token)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return ""
}

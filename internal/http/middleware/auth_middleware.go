package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/faizhadyan1212/StuMa-Api/internal/http/response"
	"github.com/faizhadyan1212/StuMa-Api/internal/observability"
	"github.com/faizhadyan1212/StuMa-Api/internal/security"
)

type contextKey string

const identityContextKey contextKey = "identity"

// bearerPrefix is matched case-sensitively with a single space, exactly as
// clients have always had to send it.
const bearerPrefix = "Bearer "

// AuthMiddleware is the gate in front of every protected route. It only
// inspects the Authorization header and the token itself; it never reaches
// into the credential store.
//
// Status split: 401 means "no usable token at all, authenticate"; 403 means
// "a token was presented and rejected". Clients rely on the distinction.
func AuthMiddleware(jwtMgr *security.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				observability.RecordTokenValidation(r.Context(), "missing")
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "Access denied. No token provided.")
				return
			}
			raw := header[len(bearerPrefix):]
			if raw == "" {
				observability.RecordTokenValidation(r.Context(), "missing")
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "Access denied. Token missing.")
				return
			}

			claims, err := jwtMgr.Parse(raw)
			if err != nil {
				switch {
				case errors.Is(err, security.ErrTokenExpired):
					observability.RecordTokenValidation(r.Context(), "expired")
					response.Error(w, r, http.StatusForbidden, "FORBIDDEN", "Token has expired. Please log in again.")
				case errors.Is(err, security.ErrTokenMalformed), errors.Is(err, security.ErrTokenSignature):
					observability.RecordTokenValidation(r.Context(), "invalid")
					response.Error(w, r, http.StatusForbidden, "FORBIDDEN", "Invalid token. Please log in again.")
				default:
					observability.RecordTokenValidation(r.Context(), "failed")
					response.Error(w, r, http.StatusForbidden, "FORBIDDEN", "Token verification failed. Please try again.")
				}
				return
			}

			ident, err := security.IdentityFromClaims(claims)
			if err != nil {
				observability.RecordTokenValidation(r.Context(), "missing_subject")
				response.Error(w, r, http.StatusForbidden, "FORBIDDEN", "Token does not contain valid user information.")
				return
			}

			observability.RecordTokenValidation(r.Context(), "success")
			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), ident)))
		})
	}
}

func ContextWithIdentity(ctx context.Context, ident *security.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, ident)
}

func IdentityFromContext(ctx context.Context) (*security.Identity, bool) {
	ident, ok := ctx.Value(identityContextKey).(*security.Identity)
	return ident, ok
}

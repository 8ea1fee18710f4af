package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/http/response"
)

type contextKey struct{}

// TokenParser turns a bearer token into a session user.
type TokenParser interface {
	Parse(token string) (*auth.SessionUser, error)
}

// User returns the authenticated user attached to the request, or nil.
func User(ctx context.Context) *auth.SessionUser {
	u, _ := ctx.Value(contextKey{}).(*auth.SessionUser)
	return u
}

// RequireAuth parses the Authorization bearer token and attaches the
// session user to the request context. Missing or invalid tokens end
// the request with a 401 envelope.
func RequireAuth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.Fail(w, http.StatusUnauthorized, "authentication required")
				return
			}

			user, err := parser.Parse(token)
			if err != nil {
				response.Fail(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole fences a subtree to the given roles. Must run after
// RequireAuth.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := auth.Authorize(User(r.Context()), roles...); err != nil {
				if err == auth.ErrUnauthenticated {
					response.Fail(w, http.StatusUnauthorized, "authentication required")
					return
				}

				response.Fail(w, http.StatusForbidden, "insufficient permissions")

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/b2bmarket/backend/internal/core"
)

const (
	IdentityKey contextKey = "identity"
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
)

// Identity is the authenticated user attached to the request context.
type Identity struct {
	UserID    int64
	Email     string
	Role      string
	FirstName string
	LastName  string
}

// IdentityResolver turns a request's credential material into an
// authenticated identity. Implementations check the bearer token first
// and fall back to the session; they must return the same opaque
// unauthorized error for a missing credential, an invalid one, and an
// inactive account.
type IdentityResolver interface {
	ResolveIdentity(
		ctx context.Context,
		bearerToken, sessionID string,
	) (*Identity, error)
}

// Authenticator guards a route subtree. It extracts both credential
// channels from the request and delegates resolution, so the guard
// itself stays transport-only.
func Authenticator(
	resolver IdentityResolver,
	sessionCookie string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractBearerToken(r)
			sessionID := ExtractSessionID(r, sessionCookie)

			identity, err := resolver.ResolveIdentity(
				r.Context(),
				token,
				sessionID,
			)
			if err != nil {
				core.JSONError(w, core.UnauthorizedError(""))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	ctx = context.WithValue(ctx, IdentityKey, identity)
	ctx = context.WithValue(ctx, UserIDKey, identity.UserID)
	ctx = context.WithValue(ctx, UserRoleKey, identity.Role)
	return ctx
}

func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userRole := GetUserRole(r.Context())

			if userRole == "" {
				core.JSONError(w, core.UnauthorizedError(""))
				return
			}

			if _, ok := roleSet[userRole]; !ok {
				core.JSONError(
					w,
					core.ForbiddenError("insufficient permissions"),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole("admin")(next)
}

func ExtractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func ExtractSessionID(r *http.Request, cookieName string) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func GetIdentity(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*Identity)
	return identity, ok
}

func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}

func GetUserRole(ctx context.Context) string {
	if role, ok := ctx.Value(UserRoleKey).(string); ok {
		return role
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	_, ok := GetUserID(ctx)
	return ok
}

func IsAdmin(ctx context.Context) bool {
	return GetUserRole(ctx) == "admin"
}

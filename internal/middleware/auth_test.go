// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b2bmarket/backend/internal/core"
)

type stubResolver struct {
	identity  *Identity
	err       error
	gotToken  string
	gotCookie string
}

func (s *stubResolver) ResolveIdentity(
	_ context.Context,
	bearerToken, sessionID string,
) (*Identity, error) {
	s.gotToken = bearerToken
	s.gotCookie = sessionID
	if s.err != nil {
		return nil, s.err
	}
	return s.identity, nil
}

func identityEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r.Context())
		require.True(t, ok)
		assert.NotZero(t, userID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatorPassesBothChannels(t *testing.T) {
	resolver := &stubResolver{identity: &Identity{UserID: 42, Role: "user"}}
	handler := Authenticator(resolver, "b2b_session")(identityEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	req.AddCookie(&http.Cookie{Name: "b2b_session", Value: "sid-123"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "some-token", resolver.gotToken)
	assert.Equal(t, "sid-123", resolver.gotCookie)
}

func TestAuthenticatorRejectsOnResolverError(t *testing.T) {
	resolver := &stubResolver{err: core.UnauthorizedError("")}
	handler := Authenticator(resolver, "b2b_session")(identityEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthenticatorMissingChannelsPassedEmpty(t *testing.T) {
	resolver := &stubResolver{identity: &Identity{UserID: 7}}
	handler := Authenticator(resolver, "b2b_session")(identityEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, resolver.gotToken)
	assert.Empty(t, resolver.gotCookie)
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		identity *Identity
		want     int
	}{
		{"admin allowed", &Identity{UserID: 1, Role: "admin"}, http.StatusOK},
		{"user forbidden", &Identity{UserID: 2, Role: "user"}, http.StatusForbidden},
		{"anonymous unauthorized", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
			if tt.identity != nil {
				req = req.WithContext(WithIdentity(req.Context(), tt.identity))
			}

			rec := httptest.NewRecorder()
			RequireAdmin(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"standard", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"scheme only", "Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractBearerToken(req))
		})
	}
}

func TestExtractSessionID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ExtractSessionID(req, "b2b_session"))

	req.AddCookie(&http.Cookie{Name: "b2b_session", Value: "sid-9"})
	assert.Equal(t, "sid-9", ExtractSessionID(req, "b2b_session"))
}

func TestGetIdentityHelpers(t *testing.T) {
	ctx := context.Background()

	_, ok := GetIdentity(ctx)
	assert.False(t, ok)
	assert.False(t, IsAuthenticated(ctx))
	assert.False(t, IsAdmin(ctx))

	ctx = WithIdentity(ctx, &Identity{UserID: 5, Role: "admin", Email: "a@b.c"})

	identity, ok := GetIdentity(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(5), identity.UserID)

	userID, ok := GetUserID(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(5), userID)

	assert.True(t, IsAuthenticated(ctx))
	assert.True(t, IsAdmin(ctx))
}

// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b2bmarket/backend/internal/config"
	"github.com/b2bmarket/backend/internal/core"
	"github.com/b2bmarket/backend/internal/email"
	"github.com/b2bmarket/backend/internal/user"
)

type fakeUserRepo struct {
	byID    map[int64]*user.User
	byEmail map[string]*user.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[int64]*user.User),
		byEmail: make(map[string]*user.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) add(u *user.User) *user.User {
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	if _, exists := f.byEmail[u.Email]; exists {
		return nil, core.ErrDuplicateKey
	}
	return f.add(u), nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, emailAddr string) (*user.User, error) {
	u, ok := f.byEmail[emailAddr]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpdatePasswordByEmail(_ context.Context, emailAddr, hash string) error {
	u, ok := f.byEmail[emailAddr]
	if !ok {
		return core.ErrNotFound
	}
	u.Password = hash
	return nil
}

type fakeResetRepo struct {
	tokens map[string]*PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[string]*PasswordResetToken)}
}

func (f *fakeResetRepo) CreateResetToken(_ context.Context, emailAddr, token string, expiresAt time.Time) error {
	f.tokens[token] = &PasswordResetToken{
		Email:     emailAddr,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (f *fakeResetRepo) GetResetToken(_ context.Context, token string) (*PasswordResetToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, core.ErrNotFound
	}
	return t, nil
}

func (f *fakeResetRepo) MarkResetTokenUsed(_ context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return core.ErrNotFound
	}
	t.Used = true
	return nil
}

type recordingMailer struct {
	sent []email.Message
}

func (m *recordingMailer) Send(_ context.Context, msg email.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

type serviceFixture struct {
	svc    *Service
	users  *fakeUserRepo
	resets *fakeResetRepo
	tokens *TokenManager
	mailer *recordingMailer
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	tokens, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	users := newFakeUserRepo()
	resets := newFakeResetRepo()
	mailer := &recordingMailer{}

	cfg := &config.Config{
		App:     config.AppConfig{BaseURL: "http://localhost:3000"},
		Session: config.SessionConfig{CookieName: "b2b_session", TTL: time.Hour},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewService(
		resets, users, tokens, NewMemorySessionStore(), mailer, cfg, logger,
	)

	return &serviceFixture{
		svc:    svc,
		users:  users,
		resets: resets,
		tokens: tokens,
		mailer: mailer,
	}
}

func (f *serviceFixture) addUser(t *testing.T, emailAddr, password string, active bool) *user.User {
	t.Helper()

	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	return f.users.add(&user.User{
		Email:     emailAddr,
		Password:  hash,
		FirstName: "Pat",
		LastName:  "Jones",
		Role:      user.RoleUser,
		IsActive:  active,
	})
}

func requireUnauthorized(t *testing.T, err error) {
	t.Helper()

	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Status)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestResolveIdentityByToken(t *testing.T) {
	f := newServiceFixture(t)
	u := f.addUser(t, "pat@example.com", "hunter42", true)

	token, err := f.tokens.CreateToken(u.ID)
	require.NoError(t, err)

	identity, err := f.svc.ResolveIdentity(context.Background(), token, "")
	require.NoError(t, err)
	assert.Equal(t, u.ID, identity.UserID)
	assert.Equal(t, u.Email, identity.Email)
}

func TestResolveIdentityBySessionOnly(t *testing.T) {
	f := newServiceFixture(t)
	u := f.addUser(t, "pat@example.com", "hunter42", true)

	result, err := f.svc.Login(context.Background(), LoginRequest{
		Email:    u.Email,
		Password: "hunter42",
	})
	require.NoError(t, err)

	identity, err := f.svc.ResolveIdentity(context.Background(), "", result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, identity.UserID)
}

func TestResolveIdentityExpiredTokenFallsBackToSession(t *testing.T) {
	f := newServiceFixture(t)
	u := f.addUser(t, "pat@example.com", "hunter42", true)

	expiredCfg := testJWTConfig()
	expiredCfg.TokenExpire = -time.Minute
	expiredIssuer, err := NewTokenManager(expiredCfg)
	require.NoError(t, err)

	expired, err := expiredIssuer.CreateToken(u.ID)
	require.NoError(t, err)

	result, err := f.svc.Login(context.Background(), LoginRequest{
		Email:    u.Email,
		Password: "hunter42",
	})
	require.NoError(t, err)

	identity, err := f.svc.ResolveIdentity(context.Background(), expired, result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, identity.UserID)
}

func TestResolveIdentityExpiredTokenNoSession(t *testing.T) {
	f := newServiceFixture(t)
	u := f.addUser(t, "pat@example.com", "hunter42", true)

	expiredCfg := testJWTConfig()
	expiredCfg.TokenExpire = -time.Minute
	expiredIssuer, err := NewTokenManager(expiredCfg)
	require.NoError(t, err)

	expired, err := expiredIssuer.CreateToken(u.ID)
	require.NoError(t, err)

	_, err = f.svc.ResolveIdentity(context.Background(), expired, "")
	requireUnauthorized(t, err)
}

func TestResolveIdentityInactiveUser(t *testing.T) {
	f := newServiceFixture(t)
	u := f.addUser(t, "pat@example.com", "hunter42", false)

	token, err := f.tokens.CreateToken(u.ID)
	require.NoError(t, err)

	_, err = f.svc.ResolveIdentity(context.Background(), token, "")
	requireUnauthorized(t, err)
}

func TestResolveIdentityUnknownUser(t *testing.T) {
	f := newServiceFixture(t)

	token, err := f.tokens.CreateToken(9999)
	require.NoError(t, err)

	_, err = f.svc.ResolveIdentity(context.Background(), token, "")
	requireUnauthorized(t, err)
}

func TestResolveIdentityNoCredentials(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.ResolveIdentity(context.Background(), "", "")
	requireUnauthorized(t, err)
}

func TestRegisterAndLogin(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	result, err := f.svc.Register(ctx, RegisterRequest{
		Email:     "new@example.com",
		Password:  "secret99",
		FirstName: "New",
		LastName:  "User",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.SessionID)
	assert.True(t, result.User.IsActive)
	assert.Equal(t, user.RoleUser, result.User.Role)

	// The stored hash is bcrypt, not the raw password.
	assert.NotEqual(t, "secret99", result.User.Password)

	login, err := f.svc.Login(ctx, LoginRequest{
		Email:    "new@example.com",
		Password: "secret99",
	})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newServiceFixture(t)
	f.addUser(t, "taken@example.com", "hunter42", true)

	_, err := f.svc.Register(context.Background(), RegisterRequest{
		Email:     "taken@example.com",
		Password:  "secret99",
		FirstName: "Dup",
		LastName:  "User",
	})

	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newServiceFixture(t)
	f.addUser(t, "pat@example.com", "hunter42", true)

	_, err := f.svc.Login(context.Background(), LoginRequest{
		Email:    "pat@example.com",
		Password: "wrong",
	})
	requireUnauthorized(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	requireUnauthorized(t, err)
}

func TestLoginInactiveAccount(t *testing.T) {
	f := newServiceFixture(t)
	f.addUser(t, "pat@example.com", "hunter42", false)

	_, err := f.svc.Login(context.Background(), LoginRequest{
		Email:    "pat@example.com",
		Password: "hunter42",
	})
	requireUnauthorized(t, err)
}

func TestLogoutDestroysSession(t *testing.T) {
	f := newServiceFixture(t)
	u := f.addUser(t, "pat@example.com", "hunter42", true)

	result, err := f.svc.Login(context.Background(), LoginRequest{
		Email:    u.Email,
		Password: "hunter42",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(context.Background(), result.SessionID))

	_, err = f.svc.ResolveIdentity(context.Background(), "", result.SessionID)
	requireUnauthorized(t, err)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	f := newServiceFixture(t)

	err := f.svc.ForgotPassword(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, f.mailer.sent)
}

func TestPasswordResetFlow(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.addUser(t, "pat@example.com", "oldpassword", true)

	require.NoError(t, f.svc.ForgotPassword(ctx, "pat@example.com"))
	require.Len(t, f.mailer.sent, 1)
	require.Len(t, f.resets.tokens, 1)

	var token string
	for tok := range f.resets.tokens {
		token = tok
	}

	require.NoError(t, f.svc.ResetPassword(ctx, token, "newpassword"))

	_, err := f.svc.Login(ctx, LoginRequest{
		Email:    "pat@example.com",
		Password: "newpassword",
	})
	require.NoError(t, err)

	// The token is single-use.
	err = f.svc.ResetPassword(ctx, token, "anotherone")
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.addUser(t, "pat@example.com", "oldpassword", true)

	require.NoError(t, f.resets.CreateResetToken(
		ctx, "pat@example.com", "stale-token", time.Now().Add(-time.Minute),
	))

	err := f.svc.ResetPassword(ctx, "stale-token", "newpassword")
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

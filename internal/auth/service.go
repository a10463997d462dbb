// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/b2bmarket/backend/internal/config"
	"github.com/b2bmarket/backend/internal/core"
	"github.com/b2bmarket/backend/internal/email"
	"github.com/b2bmarket/backend/internal/middleware"
	"github.com/b2bmarket/backend/internal/user"
)

const resetTokenTTL = time.Hour

// AuthResult carries everything a successful register or login hands
// back: the user record, a bearer token, and a fresh session id for
// the cookie channel.
type AuthResult struct {
	User      *user.User
	Token     string
	SessionID string
}

type Service struct {
	repo     Repository
	users    user.Repository
	tokens   *TokenManager
	sessions SessionStore
	mailer   email.Mailer
	logger   *slog.Logger

	sessionTTL time.Duration
	baseURL    string
}

func NewService(
	repo Repository,
	users user.Repository,
	tokens *TokenManager,
	sessions SessionStore,
	mailer email.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:       repo,
		users:      users,
		tokens:     tokens,
		sessions:   sessions,
		mailer:     mailer,
		logger:     logger,
		sessionTTL: cfg.Session.TTL,
		baseURL:    cfg.App.BaseURL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}
	if existing != nil {
		return nil, core.DuplicateError("User with this email")
	}

	hash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	created, err := s.users.Create(ctx, &user.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      user.RoleUser,
		IsActive:  true,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("User with this email")
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return s.issue(ctx, created)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	var hash *string
	if u != nil {
		hash = &u.Password
	}

	// Verification runs against a dummy hash when the user does not
	// exist, so lookup misses and password mismatches take the same
	// time.
	ok, err := core.VerifyPasswordTimingSafe(req.Password, hash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok || u == nil {
		return nil, core.UnauthorizedError("Invalid email or password")
	}

	if !u.IsActive {
		return nil, core.UnauthorizedError("Account is inactive")
	}

	return s.issue(ctx, u)
}

func (s *Service) issue(ctx context.Context, u *user.User) (*AuthResult, error) {
	token, err := s.tokens.CreateToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("creating token: %w", err)
	}

	sessionID := NewSessionID()
	if err := s.sessions.Set(ctx, sessionID, u.ID, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &AuthResult{User: u, Token: token, SessionID: sessionID}, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	return nil
}

// ResolveIdentity implements middleware.IdentityResolver. The bearer
// token is checked first; if it yields no user id the session channel
// is tried. A single opaque unauthorized error covers every failure
// mode so callers cannot distinguish a missing account from a bad
// credential.
func (s *Service) ResolveIdentity(ctx context.Context, bearerToken, sessionID string) (*middleware.Identity, error) {
	var userID int64

	if bearerToken != "" {
		if id, err := s.tokens.VerifyToken(ctx, bearerToken); err == nil {
			userID = id
		}
	}

	if userID == 0 && sessionID != "" {
		if id, err := s.sessions.Get(ctx, sessionID); err == nil {
			userID = id
		}
	}

	if userID == 0 {
		return nil, core.UnauthorizedError("")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, core.UnauthorizedError("")
	}

	if !u.IsActive {
		return nil, core.UnauthorizedError("")
	}

	return &middleware.Identity{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, nil
}

// ForgotPassword always succeeds from the caller's point of view so
// the endpoint does not reveal which emails have accounts.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) error {
	u, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("looking up user: %w", err)
	}

	token, err := core.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("generating reset token: %w", err)
	}

	expiresAt := time.Now().Add(resetTokenTTL)
	if err := s.repo.CreateResetToken(ctx, u.Email, token, expiresAt); err != nil {
		return fmt.Errorf("storing reset token: %w", err)
	}

	msg := email.PasswordResetMessage(u.Email, s.baseURL, token)
	if err := s.mailer.Send(ctx, msg); err != nil {
		// The token is already stored, so a delivery failure is logged
		// rather than surfaced to the caller.
		s.logger.Error("failed to send password reset email",
			"email", u.Email,
			"error", err,
		)
	}

	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	t, err := s.repo.GetResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.ValidationAppError("Invalid or expired reset token")
		}
		return fmt.Errorf("getting reset token: %w", err)
	}

	if t.Used || t.IsExpired() {
		return core.ValidationAppError("Invalid or expired reset token")
	}

	hash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := s.users.UpdatePasswordByEmail(ctx, t.Email, hash); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	if err := s.repo.MarkResetTokenUsed(ctx, token); err != nil {
		return fmt.Errorf("marking token used: %w", err)
	}

	return nil
}

// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/b2bmarket/backend/internal/config"
	"github.com/b2bmarket/backend/internal/core"
)

// TokenManager signs and verifies the bearer tokens issued at register
// and login. Tokens are symmetric HS256 with the user id as subject.
type TokenManager struct {
	key    jwk.Key
	cfg    config.JWTConfig
	issuer string
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("importing JWT secret: %w", err)
	}

	if err := key.Set(jwk.AlgorithmKey, jwa.HS256()); err != nil {
		return nil, fmt.Errorf("setting key algorithm: %w", err)
	}

	return &TokenManager{
		key:    key,
		cfg:    cfg,
		issuer: cfg.Issuer,
	}, nil
}

// CreateToken issues a signed token for the given user, valid for the
// configured expiry window (seven days by default).
func (m *TokenManager) CreateToken(userID int64) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		Subject(strconv.FormatInt(userID, 10)).
		Issuer(m.issuer).
		Audience([]string{m.cfg.Audience}).
		IssuedAt(now).
		Expiration(now.Add(m.cfg.TokenExpire)).
		JwtID(uuid.New().String()).
		Build()
	if err != nil {
		return "", fmt.Errorf("building token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return string(signed), nil
}

// VerifyToken validates signature, expiry, issuer and audience, and
// returns the user id carried in the subject claim.
func (m *TokenManager) VerifyToken(ctx context.Context, raw string) (int64, error) {
	token, err := jwt.Parse(
		[]byte(raw),
		jwt.WithContext(ctx),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.cfg.Audience),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return 0, core.ErrTokenExpired
		}
		return 0, core.ErrTokenInvalid
	}

	sub, ok := token.Subject()
	if !ok || sub == "" {
		return 0, core.ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, core.ErrTokenInvalid
	}

	return userID, nil
}

func isTokenExpiredError(err error) bool {
	return errors.Is(err, jwt.TokenExpiredError())
}

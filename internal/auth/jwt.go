// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/sage-nfm/internal/config"
	"github.com/carterperez-dev/sage-nfm/internal/core"
	"github.com/carterperez-dev/sage-nfm/internal/middleware"
)

const claimEmail = "email"

// TokenManager issues and verifies HS256 access tokens carrying the user's
// id and email.
type TokenManager struct {
	secret []byte
	config config.JWTConfig
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("new token manager: empty signing secret")
	}

	return &TokenManager{
		secret: []byte(cfg.Secret),
		config: cfg,
	}, nil
}

func (m *TokenManager) Issue(
	userID, email string,
) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.config.TokenExpire)

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(m.config.Issuer).
		Subject(userID).
		IssuedAt(now).
		NotBefore(now).
		Expiration(expiresAt).
		Claim(claimEmail, email).
		Build()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return string(signed), expiresAt, nil
}

func (m *TokenManager) VerifyAccessToken(
	_ context.Context,
	tokenString string,
) (*middleware.Identity, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenMissing)
	}

	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
	)
	if err != nil {
		// An expired token is still an invalid one; callers that care can
		// tell expiry apart with errors.Is(err, core.ErrTokenExpired).
		if errors.Is(err, jwt.TokenExpiredError()) {
			return nil, fmt.Errorf(
				"verify token: %w: %w",
				core.ErrTokenExpired,
				core.ErrTokenInvalid,
			)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var email string
	if err := token.Get(claimEmail, &email); err != nil {
		return nil, fmt.Errorf(
			"verify token: missing email claim: %w",
			core.ErrTokenInvalid,
		)
	}

	return &middleware.Identity{
		UserID: subject,
		Email:  email,
	}, nil
}

var _ middleware.TokenVerifier = (*TokenManager)(nil)

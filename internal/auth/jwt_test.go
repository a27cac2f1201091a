// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/sage-nfm/internal/config"
	"github.com/carterperez-dev/sage-nfm/internal/core"
)

func newTestTokens(t *testing.T, secret string, expire time.Duration) *TokenManager {
	t.Helper()

	m, err := NewTokenManager(config.JWTConfig{
		Secret:      secret,
		TokenExpire: expire,
		Issuer:      "sage-nfm",
	})
	require.NoError(t, err)
	return m
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := newTestTokens(t, "test-secret", time.Hour)

	token, expiresAt, err := m.Issue("user-1", "a@x.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	identity, err := m.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "a@x.com", identity.Email)
}

func TestTokenManager_Rejections(t *testing.T) {
	m := newTestTokens(t, "test-secret", time.Hour)
	good, _, err := m.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	otherSecret, _, err := newTestTokens(t, "other-secret", time.Hour).Issue("user-1", "a@x.com")
	require.NoError(t, err)

	otherIssuer, err := NewTokenManager(config.JWTConfig{
		Secret:      "test-secret",
		TokenExpire: time.Hour,
		Issuer:      "someone-else",
	})
	require.NoError(t, err)
	foreign, _, err := otherIssuer.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(good, ".")
	require.Len(t, parts, 3)
	tamperedPayload := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: core.ErrTokenMissing},
		{name: "garbage", token: "not-a-jwt", wantErr: core.ErrTokenInvalid},
		{name: "wrong secret", token: otherSecret, wantErr: core.ErrTokenInvalid},
		{name: "wrong issuer", token: foreign, wantErr: core.ErrTokenInvalid},
		{name: "tampered payload", token: tamperedPayload, wantErr: core.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := m.VerifyAccessToken(context.Background(), tt.token)
			require.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, core.ErrTokenExpired)
			assert.Nil(t, identity)
		})
	}
}

func TestTokenManager_ExpiredTokenRejected(t *testing.T) {
	m := newTestTokens(t, "test-secret", time.Hour)
	expired, _, err := newTestTokens(t, "test-secret", -time.Minute).Issue("user-1", "a@x.com")
	require.NoError(t, err)

	identity, err := m.VerifyAccessToken(context.Background(), expired)
	require.ErrorIs(t, err, core.ErrTokenExpired)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
	assert.Nil(t, identity)
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager(config.JWTConfig{TokenExpire: time.Hour})
	require.Error(t, err)
}

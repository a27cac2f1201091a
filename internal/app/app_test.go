// AngelaMos | 2026
// app_test.go

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/sage-nfm/internal/config"
	"github.com/carterperez-dev/sage-nfm/internal/persistence"
)

func newTestApp(t *testing.T, seed bool) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "SAGE-NFM API",
			Version:     "test",
			Environment: "development",
		},
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Database: config.DatabaseConfig{SeedDemoData: seed},
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			TokenExpire: time.Hour,
			Issuer:      "sage-nfm",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST"},
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.Equal(t, persistence.ModeFallback, a.StoreMode())
	return a.Handler()
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func call(
	t *testing.T,
	h http.Handler,
	method, path, token string,
	body any,
) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func register(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	status, env := call(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "p1",
		"name":     "A",
	})
	require.Equal(t, http.StatusCreated, status, env.Error.Message)
	require.NotEmpty(t, env.Token)
	assert.Contains(t, string(env.User), email)
	return env.Token
}

func TestScenario_RegisterSubmitListStats(t *testing.T) {
	h := newTestApp(t, false)
	token := register(t, h, "a@x.com")

	status, env := call(t, h, http.MethodPost, "/api/mps", token, map[string]int{
		"energia": 7, "foco": 6, "humor": 8, "motivacao": 7, "ansiedade": 4,
	})
	require.Equal(t, http.StatusCreated, status)

	var created struct {
		ID        string    `json:"id"`
		Timestamp time.Time `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Timestamp.IsZero())

	status, env = call(t, h, http.MethodGet, "/api/mps?limit=10&offset=0", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, env.Total)
	assert.Equal(t, 10, env.Limit)
	assert.Equal(t, 0, env.Offset)

	var listed []struct {
		ID      string `json:"id"`
		Energia int    `json:"energia"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, 7, listed[0].Energia)

	status, env = call(t, h, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, status)

	var stats struct {
		Resumo struct {
			TotalMps      int     `json:"total_mps"`
			TotalCheckins int     `json:"total_checkins"`
			MediaEnergia  float64 `json:"media_energia"`
			MediaFoco     float64 `json:"media_foco"`
		} `json:"resumo"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.Resumo.TotalMps)
	assert.Equal(t, 0, stats.Resumo.TotalCheckins)
	assert.InDelta(t, 7.0, stats.Resumo.MediaEnergia, 1e-9)
	assert.InDelta(t, 6.0, stats.Resumo.MediaFoco, 1e-9)
}

func TestScenario_NoTokenHasNoSideEffects(t *testing.T) {
	h := newTestApp(t, false)
	token := register(t, h, "a@x.com")

	status, env := call(t, h, http.MethodPost, "/api/mps", "", map[string]int{
		"energia": 1, "foco": 1, "humor": 1, "motivacao": 1, "ansiedade": 1,
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "TOKEN_MISSING", env.Error.Code)

	status, env = call(t, h, http.MethodPost, "/api/checkins", "bogus", map[string]any{
		"tipo": "x", "energia_atual": 1,
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "TOKEN_INVALID", env.Error.Code)

	for _, path := range []string{"/api/mps", "/api/checkins"} {
		status, env = call(t, h, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Zero(t, env.Total, path)
	}
}

func TestScenario_UsersAreIsolated(t *testing.T) {
	h := newTestApp(t, false)
	alice := register(t, h, "alice@x.com")
	bob := register(t, h, "bob@x.com")

	status, _ := call(t, h, http.MethodPost, "/api/checkins", alice, map[string]any{
		"tipo": "matinal", "energia_atual": 8, "prioridades": []string{"a"},
	})
	require.Equal(t, http.StatusCreated, status)

	_, env := call(t, h, http.MethodGet, "/api/checkins", bob, nil)
	assert.Zero(t, env.Total)

	_, env = call(t, h, http.MethodGet, "/api/checkins", alice, nil)
	assert.Equal(t, 1, env.Total)
}

func TestAuthErrors(t *testing.T) {
	h := newTestApp(t, false)
	register(t, h, "a@x.com")

	status, env := call(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@x.com", "password": "p1", "name": "A",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", env.Error.Code)

	status, env = call(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	status, unknown := call(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nobody@x.com", "password": "p1",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, wrong := call(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", wrong.Error.Code)
	assert.Equal(t, unknown.Error, wrong.Error)
}

func TestDemoSeedLogin(t *testing.T) {
	h := newTestApp(t, true)

	status, env := call(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": persistence.DemoEmail, "password": persistence.DemoPassword,
	})
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Empty(t, env.Data)
	assert.Contains(t, string(env.User), persistence.DemoEmail)
	token := env.Token

	status, env = call(t, h, http.MethodGet, "/api/mps", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, env.Total)

	status, env = call(t, h, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), persistence.DemoEmail)
}

func TestPublicEndpoints(t *testing.T) {
	h := newTestApp(t, false)

	status, env := call(t, h, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = call(t, h, http.MethodGet, "/api", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = call(t, h, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sage_nfm_store_mode{mode="fallback"} 1`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSystemRequiresAuth(t *testing.T) {
	h := newTestApp(t, false)

	status, _ := call(t, h, http.MethodGet, "/api/system", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	token := register(t, h, "a@x.com")
	status, env := call(t, h, http.MethodGet, "/api/system", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"mode":"fallback"`)
}

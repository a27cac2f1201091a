// AngelaMos | 2026
// handler_test.go

package system

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h *Handler, path string) SystemStatsResponse {
	t.Helper()

	r := chi.NewRouter()
	h.RegisterRoutes(r, func(next http.Handler) http.Handler { return next })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data SystemStatsResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Data
}

func TestSystemStats_Fallback(t *testing.T) {
	h := NewHandler(HandlerConfig{
		StoreMode: "fallback",
		DBStats:   func() *sql.DBStats { return nil },
		StorePing: func(context.Context) error { return nil },
	})

	stats := get(t, h, "/system")
	assert.Equal(t, "fallback", stats.Store.Mode)
	assert.True(t, stats.Store.Healthy)
	assert.Nil(t, stats.Store.Pool)
	assert.Nil(t, stats.Redis)
	assert.NotEmpty(t, stats.Runtime.GoVersion)
}

func TestSystemStats_DurableUnhealthy(t *testing.T) {
	h := NewHandler(HandlerConfig{
		StoreMode: "durable",
		DBStats:   func() *sql.DBStats { return &sql.DBStats{MaxOpenConnections: 25, InUse: 2} },
		StorePing: func(context.Context) error { return errors.New("timeout") },
	})

	stats := get(t, h, "/system")
	assert.False(t, stats.Store.Healthy)
	require.NotNil(t, stats.Store.Pool)
	assert.Equal(t, 25, stats.Store.Pool.MaxOpenConnections)
	assert.Equal(t, 2, stats.Store.Pool.InUse)
}

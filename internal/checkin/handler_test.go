// AngelaMos | 2026
// handler_test.go

package checkin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/sage-nfm/internal/middleware"
)

func newTestRouter(repo Repository) http.Handler {
	asUser := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithIdentity(r.Context(), &middleware.Identity{UserID: "u1"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r, asUser)
	return r
}

func TestHandler_CreateDefaultsLists(t *testing.T) {
	router := newTestRouter(NewMemoryRepository())

	body := `{"tipo":"matinal","energia_atual":8,"prioridades":["a","b"]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkins", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "u1", resp.Data["userId"])
	assert.Equal(t, []any{"a", "b"}, resp.Data["prioridades"])
	assert.Equal(t, []any{}, resp.Data["bloqueios"])
	assert.Equal(t, []any{}, resp.Data["proximos_passos"])
}

func TestHandler_CreateRequiresTipoAndEnergia(t *testing.T) {
	router := newTestRouter(NewMemoryRepository())

	for _, body := range []string{`{"energia_atual":5}`, `{"tipo":"x"}`} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkins", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	}
}

func TestHandler_ListPaging(t *testing.T) {
	repo := NewMemoryRepository()
	router := newTestRouter(repo)

	for range 3 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkins",
			strings.NewReader(`{"tipo":"t","energia_atual":5}`)))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkins?limit=0", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data  []Record `json:"data"`
		Total int      `json:"total"`
		Limit int      `json:"limit"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Data)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 0, resp.Limit)
}

// AngelaMos | 2026
// handler_test.go

package mps

import (
	"context"
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

func withUser(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithIdentity(r.Context(), &middleware.Identity{UserID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(repo Repository, userID string) http.Handler {
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r, withUser(userID))
	return r
}

func TestHandler_CreateAndList(t *testing.T) {
	repo := NewMemoryRepository()
	router := newTestRouter(repo, "u1")

	body := `{"energia":7,"foco":6,"humor":8,"motivacao":7,"ansiedade":4}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mps", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Success bool   `json:"success"`
		Data    Record `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.Data.ID)
	assert.Equal(t, "u1", created.Data.UserID)
	assert.Equal(t, 7, created.Data.Energia)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mps?limit=abc&offset=-3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Data   []Record `json:"data"`
		Total  int      `json:"total"`
		Limit  int      `json:"limit"`
		Offset int      `json:"offset"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	assert.Equal(t, 1, listed.Total)
	assert.Equal(t, 10, listed.Limit)
	assert.Equal(t, 0, listed.Offset)
	require.Len(t, listed.Data, 1)
	assert.Equal(t, created.Data.ID, listed.Data[0].ID)
}

func TestHandler_CreateValidation(t *testing.T) {
	repo := NewMemoryRepository()
	router := newTestRouter(repo, "u1")

	for _, body := range []string{`{"energia":7}`, `not json`} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mps", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	all, err := repo.AllForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, all, "rejected input never writes")
}

func TestHandler_ListIsOwnerScoped(t *testing.T) {
	repo := NewMemoryRepository(Record{ID: "other", UserID: "u2"})
	router := newTestRouter(repo, "u1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mps", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":0`)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

// AngelaMos | 2026
// info.go

package health

import (
	"net/http"
	"time"

	"github.com/carterperez-dev/sage-nfm/internal/core"
)

// Endpoints lists the public API surface, grouped the way the banner and
// the not-found response present it.
var Endpoints = map[string][]string{
	"auth": {
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/me",
	},
	"mps": {
		"GET /api/mps",
		"POST /api/mps",
	},
	"checkins": {
		"GET /api/checkins",
		"POST /api/checkins",
	},
	"dashboard": {
		"GET /api/dashboard/stats",
	},
	"system": {
		"GET /api/system",
		"GET /healthz",
		"GET /readyz",
		"GET /metrics",
	},
}

type BannerResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Version   string              `json:"version"`
	Status    string              `json:"status"`
	StoreMode string              `json:"store_mode"`
	Timestamp time.Time           `json:"timestamp"`
	Endpoints map[string][]string `json:"endpoints,omitempty"`
}

type NotFoundResponse struct {
	Success   bool                `json:"success"`
	Error     core.ErrorBody      `json:"error"`
	Endpoints map[string][]string `json:"endpoints"`
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, http.StatusOK, h.banner(h.info.Name, Endpoints))
}

func (h *Handler) APIStatus(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, http.StatusOK, h.banner(h.info.Name+" online", nil))
}

func (h *Handler) banner(message string, endpoints map[string][]string) BannerResponse {
	return BannerResponse{
		Success:   true,
		Message:   message,
		Version:   h.info.Version,
		Status:    "online",
		StoreMode: h.info.StoreMode,
		Timestamp: time.Now().UTC(),
		Endpoints: endpoints,
	}
}

// NotFound answers unmatched routes with the list of valid ones.
func NotFound(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, http.StatusNotFound, NotFoundResponse{
		Success: false,
		Error: core.ErrorBody{
			Code:    "NOT_FOUND",
			Message: "route " + r.Method + " " + r.URL.Path + " not found",
		},
		Endpoints: Endpoints,
	})
}

// AngelaMos | 2026
// manager.go

// Package persistence selects the storage mode once at startup and hands
// out the repositories for it.
package persistence

import (
	"context"
	"database/sql"

	"github.com/carterperez-dev/sage-nfm/internal/checkin"
	"github.com/carterperez-dev/sage-nfm/internal/mps"
	"github.com/carterperez-dev/sage-nfm/internal/user"
)

type Mode string

const (
	ModeDurable  Mode = "durable"
	ModeFallback Mode = "fallback"
)

// Manager owns one storage mode for the life of the process. Repositories
// from different modes are never mixed.
type Manager interface {
	Mode() Mode
	Users() user.Repository
	Mps() mps.Repository
	Checkins() checkin.Repository
	Ping(ctx context.Context) error
	// DBStats is nil in fallback mode.
	DBStats() *sql.DBStats
	Close() error
}

// AngelaMos | 2026
// postgres.go

package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/carterperez-dev/sage-nfm/internal/checkin"
	"github.com/carterperez-dev/sage-nfm/internal/core"
	"github.com/carterperez-dev/sage-nfm/internal/mps"
	"github.com/carterperez-dev/sage-nfm/internal/user"
)

type PostgresManager struct {
	db       *core.Database
	users    user.Repository
	mps      mps.Repository
	checkins checkin.Repository
}

// NewPostgresManager builds the durable repositories over db. Every query
// is bounded by queryTimeout.
func NewPostgresManager(
	db *core.Database,
	queryTimeout time.Duration,
) *PostgresManager {
	conn := core.WithQueryTimeout(db.DB, queryTimeout)

	return &PostgresManager{
		db:       db,
		users:    user.NewRepository(conn),
		mps:      mps.NewRepository(conn),
		checkins: checkin.NewRepository(conn),
	}
}

func (m *PostgresManager) Mode() Mode                   { return ModeDurable }
func (m *PostgresManager) Users() user.Repository       { return m.users }
func (m *PostgresManager) Mps() mps.Repository          { return m.mps }
func (m *PostgresManager) Checkins() checkin.Repository { return m.checkins }

func (m *PostgresManager) Ping(ctx context.Context) error {
	return m.db.Ping(ctx)
}

func (m *PostgresManager) DBStats() *sql.DBStats {
	stats := m.db.Stats()
	return &stats
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

var _ Manager = (*PostgresManager)(nil)

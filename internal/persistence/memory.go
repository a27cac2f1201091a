// AngelaMos | 2026
// memory.go

package persistence

import (
	"context"
	"database/sql"

	"github.com/carterperez-dev/sage-nfm/internal/checkin"
	"github.com/carterperez-dev/sage-nfm/internal/mps"
	"github.com/carterperez-dev/sage-nfm/internal/user"
)

type MemoryManager struct {
	users    user.Repository
	mps      mps.Repository
	checkins checkin.Repository
}

func NewMemoryManager(seed Seed) *MemoryManager {
	return &MemoryManager{
		users:    user.NewMemoryRepository(seed.Users...),
		mps:      mps.NewMemoryRepository(seed.Mps...),
		checkins: checkin.NewMemoryRepository(seed.Checkins...),
	}
}

func (m *MemoryManager) Mode() Mode                   { return ModeFallback }
func (m *MemoryManager) Users() user.Repository       { return m.users }
func (m *MemoryManager) Mps() mps.Repository          { return m.mps }
func (m *MemoryManager) Checkins() checkin.Repository { return m.checkins }

func (m *MemoryManager) Ping(context.Context) error { return nil }
func (m *MemoryManager) DBStats() *sql.DBStats      { return nil }
func (m *MemoryManager) Close() error               { return nil }

var _ Manager = (*MemoryManager)(nil)

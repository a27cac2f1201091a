// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/carterperez-dev/sage-nfm/internal/core"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	CreatedAt    time.Time `db:"created_at"`
}

// Stamp fills ID and CreatedAt when the caller left them empty.
func (u *User) Stamp() {
	if u.ID == "" {
		u.ID = core.NewID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = core.Now()
	}
}

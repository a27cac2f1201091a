// AngelaMos | 2026
// memory.go

package user

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/sage-nfm/internal/core"
	"github.com/carterperez-dev/sage-nfm/internal/store"
)

type memoryRepository struct {
	users *store.Collection[User]
}

// NewMemoryRepository returns a Repository over an in-process collection,
// pre-populated with seed.
func NewMemoryRepository(seed ...User) Repository {
	return &memoryRepository{users: store.NewCollection(seed...)}
}

func (r *memoryRepository) Create(_ context.Context, user *User) error {
	user.Stamp()

	added := r.users.AppendUnless(*user, func(existing User) bool {
		return existing.Email == user.Email || existing.ID == user.ID
	})
	if !added {
		return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}

	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := r.users.Find(func(u User) bool { return u.ID == id })
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return &u, nil
}

func (r *memoryRepository) GetByEmail(
	_ context.Context,
	email string,
) (*User, error) {
	u, ok := r.users.Find(func(u User) bool { return u.Email == email })
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	return &u, nil
}

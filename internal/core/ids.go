// AngelaMos | 2026
// ids.go

package core

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a UUIDv7 string. The leading bits encode creation time, so
// IDs sort in creation order.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Now is the store clock: UTC at microsecond precision, which is what
// Postgres TIMESTAMPTZ keeps. Both storage modes stamp with it so values
// compare identically.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// AngelaMos | 2026
// entity.go

package mps

import (
	"time"

	"github.com/carterperez-dev/sage-nfm/internal/core"
)

// Record is one self-reported snapshot. The 1-10 scale of the five
// scores is a client convention and is stored as given.
type Record struct {
	ID        string    `db:"id"          json:"id"`
	UserID    string    `db:"user_id"     json:"userId"`
	Timestamp time.Time `db:"recorded_at" json:"timestamp"`
	Energia   int       `db:"energia"     json:"energia"`
	Foco      int       `db:"foco"        json:"foco"`
	Humor     int       `db:"humor"       json:"humor"`
	Motivacao int       `db:"motivacao"   json:"motivacao"`
	Ansiedade int       `db:"ansiedade"   json:"ansiedade"`
	Notas     string    `db:"notas"       json:"notas"`
}

func (r Record) EntityID() string      { return r.ID }
func (r Record) OwnerID() string       { return r.UserID }
func (r Record) RecordedAt() time.Time { return r.Timestamp }

// Stamp fills ID and Timestamp when the caller left them empty.
func (r *Record) Stamp() {
	if r.ID == "" {
		r.ID = core.NewID()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = core.Now()
	}
}

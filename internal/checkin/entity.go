// AngelaMos | 2026
// entity.go

package checkin

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/carterperez-dev/sage-nfm/internal/core"
)

type Record struct {
	ID             string     `db:"id"              json:"id"`
	UserID         string     `db:"user_id"         json:"userId"`
	Timestamp      time.Time  `db:"recorded_at"     json:"timestamp"`
	Tipo           string     `db:"tipo"            json:"tipo"`
	Prioridades    StringList `db:"prioridades"     json:"prioridades"`
	EnergiaAtual   int        `db:"energia_atual"   json:"energia_atual"`
	FocoPrincipal  string     `db:"foco_principal"  json:"foco_principal"`
	Bloqueios      StringList `db:"bloqueios"       json:"bloqueios"`
	ProximosPassos StringList `db:"proximos_passos" json:"proximos_passos"`
}

func (r Record) EntityID() string      { return r.ID }
func (r Record) OwnerID() string       { return r.UserID }
func (r Record) RecordedAt() time.Time { return r.Timestamp }

func (r *Record) Stamp() {
	if r.ID == "" {
		r.ID = core.NewID()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = core.Now()
	}
	r.Prioridades = r.Prioridades.orEmpty()
	r.Bloqueios = r.Bloqueios.orEmpty()
	r.ProximosPassos = r.ProximosPassos.orEmpty()
}

// clone detaches the list fields so stored records never share backing
// arrays with callers.
func (r Record) clone() Record {
	r.Prioridades = slices.Clone(r.Prioridades.orEmpty())
	r.Bloqueios = slices.Clone(r.Bloqueios.orEmpty())
	r.ProximosPassos = slices.Clone(r.ProximosPassos.orEmpty())
	return r
}

// StringList is an ordered list of strings kept in a JSONB column.
type StringList []string

func (l StringList) orEmpty() StringList {
	if l == nil {
		return StringList{}
	}
	return l
}

func (l StringList) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(l.orEmpty()))
	if err != nil {
		return nil, fmt.Errorf("encode string list: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}
	*l = StringList(out).orEmpty()
	return nil
}

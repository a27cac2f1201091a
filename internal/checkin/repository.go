// AngelaMos | 2026
// repository.go

package checkin

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/sage-nfm/internal/core"
	"github.com/carterperez-dev/sage-nfm/internal/store"
)

type Repository interface {
	Insert(ctx context.Context, record *Record) error
	List(ctx context.Context, userID string, page store.Page) ([]Record, int, error)
	AllForUser(ctx context.Context, userID string) ([]Record, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const selectColumns = `
		SELECT id, user_id, recorded_at, tipo, prioridades, energia_atual,
		       foco_principal, bloqueios, proximos_passos
		FROM checkins`

func (r *repository) Insert(ctx context.Context, record *Record) error {
	record.Stamp()

	query := `
		INSERT INTO checkins (
			id, user_id, recorded_at, tipo, prioridades, energia_atual,
			foco_principal, bloqueios, proximos_passos
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Timestamp,
		record.Tipo,
		record.Prioridades,
		record.EnergiaAtual,
		record.FocoPrincipal,
		record.Bloqueios,
		record.ProximosPassos,
	)
	if err != nil {
		return fmt.Errorf("insert checkin: %w", err)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	userID string,
	page store.Page,
) ([]Record, int, error) {
	countQuery := `SELECT COUNT(*) FROM checkins WHERE user_id = $1`
	query := selectColumns + `
		WHERE user_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	var total int
	records := []Record{}

	// Count and window come from one snapshot so total matches the page.
	err := core.ReadSnapshot(ctx, r.db, func(ctx context.Context, q core.DBTX) error {
		if err := q.GetContext(ctx, &total, countQuery, userID); err != nil {
			return fmt.Errorf("count checkins: %w", err)
		}
		if page.Limit <= 0 || page.Offset >= total {
			return nil
		}
		if err := q.SelectContext(
			ctx, &records, query, userID, page.Limit, page.Offset,
		); err != nil {
			return fmt.Errorf("list checkins: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *repository) AllForUser(
	ctx context.Context,
	userID string,
) ([]Record, error) {
	query := selectColumns + `
		WHERE user_id = $1
		ORDER BY seq ASC`

	records := []Record{}
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("all checkins for user: %w", err)
	}

	return records, nil
}

// AngelaMos | 2026
// repository.go

package mps

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/sage-nfm/internal/core"
	"github.com/carterperez-dev/sage-nfm/internal/store"
)

// Repository is implemented by the Postgres store and the in-memory
// fallback with identical ordering and paging.
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

func (r *repository) Insert(ctx context.Context, record *Record) error {
	record.Stamp()

	query := `
		INSERT INTO mps (
			id, user_id, recorded_at,
			energia, foco, humor, motivacao, ansiedade, notas
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Timestamp,
		record.Energia,
		record.Foco,
		record.Humor,
		record.Motivacao,
		record.Ansiedade,
		record.Notas,
	)
	if err != nil {
		return fmt.Errorf("insert mps: %w", err)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	userID string,
	page store.Page,
) ([]Record, int, error) {
	countQuery := `SELECT COUNT(*) FROM mps WHERE user_id = $1`
	query := `
		SELECT id, user_id, recorded_at,
		       energia, foco, humor, motivacao, ansiedade, notas
		FROM mps
		WHERE user_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	var total int
	records := []Record{}

	// Count and window come from one snapshot so total matches the page.
	err := core.ReadSnapshot(ctx, r.db, func(ctx context.Context, q core.DBTX) error {
		if err := q.GetContext(ctx, &total, countQuery, userID); err != nil {
			return fmt.Errorf("count mps: %w", err)
		}
		if page.Limit <= 0 || page.Offset >= total {
			return nil
		}
		if err := q.SelectContext(
			ctx, &records, query, userID, page.Limit, page.Offset,
		); err != nil {
			return fmt.Errorf("list mps: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// AllForUser returns the user's full history in insertion order.
func (r *repository) AllForUser(
	ctx context.Context,
	userID string,
) ([]Record, error) {
	query := `
		SELECT id, user_id, recorded_at,
		       energia, foco, humor, motivacao, ansiedade, notas
		FROM mps
		WHERE user_id = $1
		ORDER BY seq ASC`

	records := []Record{}
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("all mps for user: %w", err)
	}

	return records, nil
}

// AngelaMos | 2026
// memory.go

package mps

import (
	"context"

	"github.com/carterperez-dev/sage-nfm/internal/store"
)

type memoryRepository struct {
	records *store.Timeline[Record]
}

func NewMemoryRepository(seed ...Record) Repository {
	return &memoryRepository{records: store.NewTimeline(seed...)}
}

func (r *memoryRepository) Insert(_ context.Context, record *Record) error {
	record.Stamp()
	r.records.Append(*record)
	return nil
}

func (r *memoryRepository) List(
	_ context.Context,
	userID string,
	page store.Page,
) ([]Record, int, error) {
	records, total := r.records.Window(userID, page)
	return records, total, nil
}

func (r *memoryRepository) AllForUser(
	_ context.Context,
	userID string,
) ([]Record, error) {
	return r.records.AllFor(userID), nil
}

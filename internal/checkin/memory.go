// AngelaMos | 2026
// memory.go

package checkin

import (
	"context"

	"github.com/carterperez-dev/sage-nfm/internal/store"
)

type memoryRepository struct {
	records *store.Timeline[Record]
}

func NewMemoryRepository(seed ...Record) Repository {
	cloned := make([]Record, 0, len(seed))
	for _, r := range seed {
		cloned = append(cloned, r.clone())
	}
	return &memoryRepository{records: store.NewTimeline(cloned...)}
}

func (r *memoryRepository) Insert(_ context.Context, record *Record) error {
	record.Stamp()
	r.records.Append(record.clone())
	return nil
}

func (r *memoryRepository) List(
	_ context.Context,
	userID string,
	page store.Page,
) ([]Record, int, error) {
	records, total := r.records.Window(userID, page)
	return cloneAll(records), total, nil
}

func (r *memoryRepository) AllForUser(
	_ context.Context,
	userID string,
) ([]Record, error) {
	return cloneAll(r.records.AllFor(userID)), nil
}

func cloneAll(records []Record) []Record {
	for i := range records {
		records[i] = records[i].clone()
	}
	return records
}

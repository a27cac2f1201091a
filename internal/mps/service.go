// AngelaMos | 2026
// service.go

package mps

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/sage-nfm/internal/core"
	"github.com/carterperez-dev/sage-nfm/internal/store"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateRequest,
) (*Record, error) {
	ctx, span := core.StartSpan(ctx, "mps.Create",
		attribute.String("user.id", userID),
	)
	defer span.End()

	record := req.toRecord(userID)
	if err := s.repo.Insert(ctx, record); err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	return record, nil
}

func (s *Service) List(
	ctx context.Context,
	userID string,
	page store.Page,
) ([]Record, int, error) {
	ctx, span := core.StartSpan(ctx, "mps.List",
		attribute.String("user.id", userID),
		attribute.Int("page.limit", page.Limit),
		attribute.Int("page.offset", page.Offset),
	)
	defer span.End()

	records, total, err := s.repo.List(ctx, userID, page)
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, 0, err
	}

	return records, total, nil
}

func (s *Service) AllForUser(ctx context.Context, userID string) ([]Record, error) {
	return s.repo.AllForUser(ctx, userID)
}

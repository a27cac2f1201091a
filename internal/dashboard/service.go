// AngelaMos | 2026
// service.go

package dashboard

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/carterperez-dev/sage-nfm/internal/checkin"
	"github.com/carterperez-dev/sage-nfm/internal/core"
	"github.com/carterperez-dev/sage-nfm/internal/mps"
)

const (
	RecentMpsCount      = 5
	RecentCheckinsCount = 3
)

type MpsHistory interface {
	AllForUser(ctx context.Context, userID string) ([]mps.Record, error)
}

type CheckinHistory interface {
	AllForUser(ctx context.Context, userID string) ([]checkin.Record, error)
}

type Service struct {
	mps      MpsHistory
	checkins CheckinHistory
}

func NewService(mpsHistory MpsHistory, checkinHistory CheckinHistory) *Service {
	return &Service{
		mps:      mpsHistory,
		checkins: checkinHistory,
	}
}

// ComputeStats summarizes a user's whole history. Both histories load
// concurrently and a failure in either aborts the call.
func (s *Service) ComputeStats(ctx context.Context, userID string) (*Stats, error) {
	ctx, span := core.StartSpan(ctx, "dashboard.ComputeStats",
		attribute.String("user.id", userID),
	)
	defer span.End()

	var (
		mpsRecords     []mps.Record
		checkinRecords []checkin.Record
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.mps.AllForUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("load mps history: %w", err)
		}
		mpsRecords = records
		return nil
	})
	g.Go(func() error {
		records, err := s.checkins.AllForUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("load checkin history: %w", err)
		}
		checkinRecords = records
		return nil
	})

	if err := g.Wait(); err != nil {
		core.SetSpanError(ctx, err)
		return nil, fmt.Errorf("compute stats: %w", err)
	}

	stats := summarize(mpsRecords, checkinRecords)
	span.SetAttributes(
		attribute.Int("stats.total_mps", stats.Summary.TotalMps),
		attribute.Int("stats.total_checkins", stats.Summary.TotalCheckins),
	)

	return stats, nil
}

func summarize(mpsRecords []mps.Record, checkinRecords []checkin.Record) *Stats {
	var energia, foco int
	for _, r := range mpsRecords {
		energia += r.Energia
		foco += r.Foco
	}

	return &Stats{
		Summary: Summary{
			TotalMps:      len(mpsRecords),
			TotalCheckins: len(checkinRecords),
			AvgEnergia:    average(energia, len(mpsRecords)),
			AvgFoco:       average(foco, len(mpsRecords)),
		},
		RecentMps:      tail(mpsRecords, RecentMpsCount),
		RecentCheckins: tail(checkinRecords, RecentCheckinsCount),
	}
}

// average is the mean rounded to one decimal, 0 for an empty history.
func average(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}

// tail returns the last n items in their existing order.
func tail[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[len(items)-n:]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

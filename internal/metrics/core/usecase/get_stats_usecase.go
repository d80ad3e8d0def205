package usecase

import (
	"context"
	"fmt"

	"people-counting-service/internal/metrics/core/domain"
	"people-counting-service/internal/metrics/core/ports"
)

type GetStatsUseCase struct {
	reader ports.MetricsReaderPort
}

func NewGetStatsUseCase(reader ports.MetricsReaderPort) *GetStatsUseCase {
	return &GetStatsUseCase{reader: reader}
}

// Execute runs both aggregates against current data. Empty tables yield
// empty, non-nil slices.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*domain.Stats, error) {
	summary, err := uc.reader.DirectionTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("direction totals: %w", err)
	}

	hourly, err := uc.reader.HourlyTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("hourly totals: %w", err)
	}

	if summary == nil {
		summary = []domain.DirectionTotal{}
	}
	if hourly == nil {
		hourly = []domain.HourlyTotal{}
	}

	return &domain.Stats{Summary: summary, Hourly: hourly}, nil
}

package ports

import (
	"context"

	"people-counting-service/internal/metrics/core/domain"
)

// MetricsReaderPort aggregates over the full counts table; there is no time
// range or filter.
type MetricsReaderPort interface {
	DirectionTotals(ctx context.Context) ([]domain.DirectionTotal, error)
	HourlyTotals(ctx context.Context) ([]domain.HourlyTotal, error)
}

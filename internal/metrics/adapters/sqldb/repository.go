package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"people-counting-service/internal/metrics/core/domain"
)

// Timestamps are stored as "YYYY-MM-DD HH:MM:SS" text, so the first 13
// characters identify the hour on both sqlite and postgres.
const (
	directionTotalsSQL = `
SELECT
    direction,
    COALESCE(SUM("count"), 0) AS total
FROM counts
GROUP BY direction
ORDER BY direction`

	hourlyTotalsSQL = `
SELECT
    substr("timestamp", 1, 13) || ':00:00' AS hour,
    direction,
    COALESCE(SUM("count"), 0) AS total
FROM counts
GROUP BY substr("timestamp", 1, 13), direction
ORDER BY hour ASC, direction ASC`
)

type MetricsRepository struct {
	db DB
}

func NewMetricsRepository(db DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

func (r *MetricsRepository) DirectionTotals(ctx context.Context) ([]domain.DirectionTotal, error) {
	rows, err := r.db.QueryContext(ctx, directionTotalsSQL)
	if err != nil {
		return nil, fmt.Errorf("query direction totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.DirectionTotal{}
	for rows.Next() {
		var dir sql.NullString
		var total int64

		if err := rows.Scan(&dir, &total); err != nil {
			return nil, fmt.Errorf("scan direction total: %w", err)
		}

		totals = append(totals, domain.DirectionTotal{
			Direction: dir.String,
			Total:     total,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate direction totals: %w", err)
	}

	return totals, nil
}

func (r *MetricsRepository) HourlyTotals(ctx context.Context) ([]domain.HourlyTotal, error) {
	rows, err := r.db.QueryContext(ctx, hourlyTotalsSQL)
	if err != nil {
		return nil, fmt.Errorf("query hourly totals: %w", err)
	}
	defer rows.Close()

	hourly := []domain.HourlyTotal{}
	for rows.Next() {
		var hour, dir sql.NullString
		var total int64

		if err := rows.Scan(&hour, &dir, &total); err != nil {
			return nil, fmt.Errorf("scan hourly total: %w", err)
		}

		hourly = append(hourly, domain.HourlyTotal{
			Hour:      hour.String,
			Direction: dir.String,
			Count:     total,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hourly totals: %w", err)
	}

	return hourly, nil
}

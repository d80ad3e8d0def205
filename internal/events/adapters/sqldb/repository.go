package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"people-counting-service/internal/events/core/domain"
	"people-counting-service/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var (
	_ ports.EventRepositoryPort = (*EventRepository)(nil)
	_ ports.EventReaderPort     = (*EventRepository)(nil)
)

// Placeholders and RETURNING are accepted by both sqlite3 and postgres.
const insertEventSQL = `
INSERT INTO counts (
    "timestamp",
    direction,
    "count",
    raw_payload
) VALUES (
    $1, $2, $3, $4
)
RETURNING id`

const listRecentSQL = `
SELECT id, "timestamp", direction, "count", raw_payload
FROM counts
ORDER BY "timestamp" DESC, id DESC
LIMIT $1`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.CountEvent) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, insertEventSQL,
		e.Timestamp,
		string(e.Direction),
		e.Count,
		e.RawPayload,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert count event: %w", err)
	}
	return id, nil
}

func (r *EventRepository) ListRecent(ctx context.Context, limit int) ([]domain.CountEvent, error) {
	rows, err := r.db.QueryContext(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent counts: %w", err)
	}
	defer rows.Close()

	events := make([]domain.CountEvent, 0, limit)
	for rows.Next() {
		// rows written by older relays may carry NULLs
		var (
			id                 int64
			ts, direction, raw sql.NullString
			count              sql.NullInt64
		)
		if err := rows.Scan(&id, &ts, &direction, &count, &raw); err != nil {
			return nil, fmt.Errorf("scan count event: %w", err)
		}
		events = append(events, domain.CountEvent{
			ID:         id,
			Timestamp:  ts.String,
			Direction:  domain.Direction(direction.String),
			Count:      count.Int64,
			RawPayload: raw.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate count events: %w", err)
	}

	return events, nil
}

package ports

import (
	"context"

	"people-counting-service/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// InsertEvent appends one row and returns the store-assigned id.
	InsertEvent(ctx context.Context, e *domain.CountEvent) (int64, error)
}

type EventReaderPort interface {
	// ListRecent returns at most limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.CountEvent, error)
}

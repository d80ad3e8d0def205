package usecase

import (
	"context"

	"people-counting-service/internal/events/core/domain"
	"people-counting-service/internal/events/core/ports"
)

// RecentLimit is the fixed page size of the recent events listing.
const RecentLimit = 100

type ListCountsUseCase struct {
	reader ports.EventReaderPort
}

func NewListCountsUseCase(reader ports.EventReaderPort) *ListCountsUseCase {
	return &ListCountsUseCase{reader: reader}
}

func (uc *ListCountsUseCase) Execute(ctx context.Context) ([]domain.CountEvent, error) {
	events, err := uc.reader.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.CountEvent{}
	}
	return events, nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"people-counting-service/internal/events/core/domain"
	"people-counting-service/internal/events/core/ports"
)

type StoreCountUseCase struct {
	repo ports.EventRepositoryPort
	loc  *time.Location
}

// NewStoreCountUseCase stores timestamps as wall-clock time in loc (UTC when nil).
func NewStoreCountUseCase(repo ports.EventRepositoryPort, loc *time.Location) *StoreCountUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &StoreCountUseCase{repo: repo, loc: loc}
}

type StoreCountInput struct {
	Payload []byte
}

// Execute parses one sensor payload and appends it to the counts table.
// Parse failures wrap ErrInvalidPayload and never reach the repository.
func (uc *StoreCountUseCase) Execute(ctx context.Context, in StoreCountInput) (*domain.CountEvent, error) {
	p, err := parsePayload(in.Payload)
	if err != nil {
		return nil, err
	}

	e := &domain.CountEvent{
		Timestamp:  p.UtcTime.In(uc.loc).Format(domain.TimestampLayout),
		Direction:  p.Direction,
		Count:      p.Count,
		RawPayload: string(in.Payload),
	}

	id, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("store count event: %w", err)
	}
	e.ID = id

	return e, nil
}

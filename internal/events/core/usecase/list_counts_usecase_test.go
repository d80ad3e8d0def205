package usecase_test

import (
	"context"
	"errors"
	"testing"

	"people-counting-service/internal/events/core/domain"
	"people-counting-service/internal/events/core/usecase"
)

type fakeEventReader struct {
	ListFn    func(ctx context.Context, limit int) ([]domain.CountEvent, error)
	lastLimit int
}

func (f *fakeEventReader) ListRecent(ctx context.Context, limit int) ([]domain.CountEvent, error) {
	f.lastLimit = limit
	if f.ListFn != nil {
		return f.ListFn(ctx, limit)
	}
	return nil, nil
}

func TestListCounts_UsesFixedLimit(t *testing.T) {
	reader := &fakeEventReader{
		ListFn: func(ctx context.Context, limit int) ([]domain.CountEvent, error) {
			return []domain.CountEvent{
				{ID: 2, Timestamp: "2025-01-15 10:31:00", Direction: domain.DirectionOut, Count: 1},
				{ID: 1, Timestamp: "2025-01-15 10:30:00", Direction: domain.DirectionIn, Count: 3},
			}, nil
		},
	}

	uc := usecase.NewListCountsUseCase(reader)

	events, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reader.lastLimit != usecase.RecentLimit {
		t.Fatalf("expected limit %d, got %d", usecase.RecentLimit, reader.lastLimit)
	}
	if len(events) != 2 || events[0].ID != 2 {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestListCounts_EmptyIsNonNil(t *testing.T) {
	uc := usecase.NewListCountsUseCase(&fakeEventReader{})

	events, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if events == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestListCounts_ReaderError(t *testing.T) {
	reader := &fakeEventReader{
		ListFn: func(ctx context.Context, limit int) ([]domain.CountEvent, error) {
			return nil, errors.New("db error")
		},
	}

	uc := usecase.NewListCountsUseCase(reader)

	if _, err := uc.Execute(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

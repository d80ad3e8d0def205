package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	httpadapter "people-counting-service/internal/metrics/adapters/http/fiber"
	"people-counting-service/internal/metrics/core/domain"
)

// Fake usecase implementing the interface that handler depends on.
type fakeGetStatsUseCase struct {
	ExecuteFn func(ctx context.Context) (*domain.Stats, error)
	called    bool
}

func (f *fakeGetStatsUseCase) Execute(ctx context.Context) (*domain.Stats, error) {
	f.called = true
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx)
	}
	return &domain.Stats{}, nil
}

func setupApp(t *testing.T, uc httpadapter.GetStatsUseCase, logger *zap.Logger) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewStatsHandler(uc, logger)
	app.Get("/api/stats", h.GetStats)
	return app
}

func getStats(t *testing.T, app *fiber.App) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()
	return resp, body
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGetStats_Success(t *testing.T) {
	uc := &fakeGetStatsUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.Stats, error) {
			return &domain.Stats{
				Summary: []domain.DirectionTotal{
					{Direction: "in", Total: 12},
					{Direction: "out", Total: 9},
				},
				Hourly: []domain.HourlyTotal{
					{Hour: "2025-01-15 10:00:00", Direction: "in", Count: 12},
				},
			}, nil
		},
	}

	app := setupApp(t, uc, nil)
	resp, body := getStats(t, app)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var got httpadapter.StatsResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got.Summary) != 2 || got.Summary[1].Direction != "out" || got.Summary[1].Total != 9 {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
	if len(got.Hourly) != 1 || got.Hourly[0].Hour != "2025-01-15 10:00:00" || got.Hourly[0].Count != 12 {
		t.Fatalf("unexpected hourly: %+v", got.Hourly)
	}
}

// ------------------------------------------------------------
// EMPTY: arrays, never null
// ------------------------------------------------------------

func TestGetStats_EmptyRendersArrays(t *testing.T) {
	app := setupApp(t, &fakeGetStatsUseCase{}, nil)
	resp, body := getStats(t, app)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if string(body) != `{"summary":[],"hourly":[]}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

// ------------------------------------------------------------
// ERROR
// ------------------------------------------------------------

func TestGetStats_UseCaseError(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	uc := &fakeGetStatsUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.Stats, error) {
			return nil, errors.New("no such table: counts")
		},
	}

	app := setupApp(t, uc, zap.New(core))
	resp, body := getStats(t, app)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
	if string(body) != `{"error":"internal_server_error"}` {
		t.Fatalf("unexpected body: %s", body)
	}
	if logs.FilterMessage("error fetching stats").Len() != 1 {
		t.Fatalf("expected the failure to be logged")
	}
	if !uc.called {
		t.Fatalf("expected usecase to be called")
	}
}

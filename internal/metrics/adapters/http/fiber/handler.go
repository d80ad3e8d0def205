package fiber

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"people-counting-service/internal/metrics/core/domain"
)

type GetStatsUseCase interface {
	Execute(ctx context.Context) (*domain.Stats, error)
}

type StatsHandler struct {
	uc     GetStatsUseCase
	logger *zap.Logger
}

func NewStatsHandler(uc GetStatsUseCase, logger *zap.Logger) *StatsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsHandler{uc: uc, logger: logger}
}

// GetStats godoc
// @Summary Aggregated people counts
// @Description Returns the total count per direction and hourly totals per direction over all stored events
// @Tags Stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	res, err := h.uc.Execute(c.UserContext())
	if err != nil {
		h.logger.Error("error fetching stats", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := StatsResponse{
		Summary: make([]DirectionTotalResponse, 0, len(res.Summary)),
		Hourly:  make([]HourlyTotalResponse, 0, len(res.Hourly)),
	}

	for _, s := range res.Summary {
		resp.Summary = append(resp.Summary, DirectionTotalResponse{
			Direction: s.Direction,
			Total:     s.Total,
		})
	}
	for _, hr := range res.Hourly {
		resp.Hourly = append(resp.Hourly, HourlyTotalResponse{
			Hour:      hr.Hour,
			Direction: hr.Direction,
			Count:     hr.Count,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

package fiber

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"people-counting-service/internal/events/core/domain"
)

type ListCountsUseCase interface {
	Execute(ctx context.Context) ([]domain.CountEvent, error)
}

type CountsHandler struct {
	listUC ListCountsUseCase
	logger *zap.Logger
}

func NewCountsHandler(listUC ListCountsUseCase, logger *zap.Logger) *CountsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CountsHandler{listUC: listUC, logger: logger}
}

// ListCounts godoc
// @Summary Recent count events
// @Description Returns the 100 most recent count events, newest first
// @Tags Counts
// @Produce json
// @Success 200 {array} CountEventResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/counts [get]
func (h *CountsHandler) ListCounts(c *fiber.Ctx) error {
	events, err := h.listUC.Execute(c.UserContext())
	if err != nil {
		h.logger.Error("error fetching counts", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := make([]CountEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toCountEventResponse(e))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

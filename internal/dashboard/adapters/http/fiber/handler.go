package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"people-counting-service/internal/dashboard/core/domain"
)

type ConfigHandler struct {
	resp BrokerConfigResponse
}

// NewConfigHandler renders settings once; the relay never changes them at runtime.
func NewConfigHandler(s domain.BrokerSettings) *ConfigHandler {
	return &ConfigHandler{resp: BrokerConfigResponse{
		Host:     s.Host,
		Port:     s.Port,
		Protocol: s.Protocol,
		Path:     s.Path,
		UseSSL:   s.UseSSL,
		Username: s.Username,
		Password: s.Password,
		Topic:    s.Topic,
	}}
}

// GetConfig godoc
// @Summary Broker settings
// @Description Returns the MQTT connection settings used by the browser dashboards
// @Tags Config
// @Produce json
// @Success 200 {object} BrokerConfigResponse
// @Router /api/config [get]
func (h *ConfigHandler) GetConfig(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.resp)
}

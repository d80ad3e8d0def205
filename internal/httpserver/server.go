// Package httpserver assembles the fiber app serving the read API, probes,
// Prometheus metrics, Swagger UI and the optional dashboard directory.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	dashboardHttp "people-counting-service/internal/dashboard/adapters/http/fiber"
	eventsHttp "people-counting-service/internal/events/adapters/http/fiber"
	metricsHttp "people-counting-service/internal/metrics/adapters/http/fiber"
	"people-counting-service/internal/telemetry"
)

const readyTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Counts *eventsHttp.CountsHandler
	Stats  *metricsHttp.StatsHandler
	Config *dashboardHttp.ConfigHandler
}

type Options struct {
	Logger    *zap.Logger
	DB        Pinger              // readiness probe; nil reports ready
	Gatherer  prometheus.Gatherer // nil disables /metrics
	StaticDir string              // served at / when set
}

type errorBody struct {
	Error string `json:"error"`
}

func New(h Handlers, opts Options) *fiber.App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "people-counting-service",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	app.Use(requestid.New())
	app.Use(RequestLogger(logger))
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/ready", readyHandler(opts.DB, logger))

	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(telemetry.Handler(opts.Gatherer)))
	}

	app.Get("/docs/*", fiberSwagger.WrapHandler)

	api := app.Group("/api")
	api.Get("/counts", h.Counts.ListCounts)
	api.Get("/stats", h.Stats.GetStats)
	api.Get("/config", h.Config.GetConfig)

	if opts.StaticDir != "" {
		app.Static("/", opts.StaticDir)
	}

	return app
}

func readyHandler(db Pinger, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				logger.Warn("readiness check failed", zap.Error(err))
				return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ready"})
	}
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := http.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		body := errorBody{Error: "internal_server_error"}
		switch code {
		case http.StatusNotFound:
			body.Error = "not_found"
		case http.StatusMethodNotAllowed:
			body.Error = "method_not_allowed"
		default:
			if code < http.StatusInternalServerError {
				body.Error = "bad_request"
			} else {
				logger.Error("unhandled request error",
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.Error(err),
				)
			}
		}

		return c.Status(code).JSON(body)
	}
}

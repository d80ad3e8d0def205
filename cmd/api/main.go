package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"people-counting-service/internal/config"
	dashboardDomain "people-counting-service/internal/dashboard/core/domain"
	"people-counting-service/internal/httpserver"
	"people-counting-service/internal/logging"
	"people-counting-service/internal/storage"
	"people-counting-service/internal/telemetry"

	dashboardHttp "people-counting-service/internal/dashboard/adapters/http/fiber"

	eventsHttp "people-counting-service/internal/events/adapters/http/fiber"
	eventsMqtt "people-counting-service/internal/events/adapters/mqtt"
	eventsRepo "people-counting-service/internal/events/adapters/sqldb"
	eventsUsecase "people-counting-service/internal/events/core/usecase"

	metricsHttp "people-counting-service/internal/metrics/adapters/http/fiber"
	metricsRepo "people-counting-service/internal/metrics/adapters/sqldb"
	metricsUsecase "people-counting-service/internal/metrics/core/usecase"

	_ "people-counting-service/docs"
)

// @title People Counting Service API
// @version 1.0
// @description Read API over people-counting events relayed from MQTT.
// @BasePath /

const shutdownTimeout = 5 * time.Second

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:          "people-counting-service",
	Short:        "Relays MQTT people-counting events into a database and serves them over HTTP",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json); environment variables override it")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "L", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// DB connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := storage.Open(ctx, storage.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN})
	cancel()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database", zap.Error(err))
			return
		}
		logger.Info("closed the database connection")
	}()
	logger.Info("connected to database", zap.String("driver", cfg.DB.Driver))

	// Telemetry
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewMetrics(reg)

	// Repositories
	eventRepository := eventsRepo.NewEventRepository(eventsRepo.NewSQLDB(db))
	metricsRepository := metricsRepo.NewMetricsRepository(metricsRepo.NewSQLDB(db))

	// Usecases
	storeCountUC := eventsUsecase.NewStoreCountUseCase(eventRepository, loc)
	listCountsUC := eventsUsecase.NewListCountsUseCase(eventRepository)
	getStatsUC := metricsUsecase.NewGetStatsUseCase(metricsRepository)

	// MQTT relay
	mqttOpts := eventsMqtt.Options{
		Protocol:           cfg.MQTT.Protocol,
		Host:               cfg.MQTT.Host,
		Port:               cfg.MQTT.Port,
		Path:               cfg.MQTT.Path,
		Username:           cfg.MQTT.Username,
		Password:           cfg.MQTT.Password,
		Topic:              cfg.MQTT.Topic,
		QoS:                byte(cfg.MQTT.QoS),
		ClientIDPrefix:     cfg.MQTT.ClientIDPrefix,
		InsecureSkipVerify: cfg.MQTT.InsecureSkipVerify,
		ConnectRetry:       true,
	}
	subscriber := eventsMqtt.NewSubscriber(mqttOpts, storeCountUC, logger, metrics)
	if err := subscriber.Connect(); err != nil {
		return err
	}
	defer subscriber.Close()

	// HTTP (Fiber) app + handlers
	app := httpserver.New(httpserver.Handlers{
		Counts: eventsHttp.NewCountsHandler(listCountsUC, logger),
		Stats:  metricsHttp.NewStatsHandler(getStatsUC, logger),
		Config: dashboardHttp.NewConfigHandler(dashboardDomain.BrokerSettings{
			Host:     cfg.MQTT.Host,
			Port:     cfg.MQTT.Port,
			Protocol: cfg.MQTT.Protocol,
			Path:     cfg.MQTT.Path,
			UseSSL:   mqttOpts.UseTLS(),
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
			Topic:    cfg.MQTT.Topic,
		}),
	}, httpserver.Options{
		Logger:    logger,
		DB:        db,
		Gatherer:  reg,
		StaticDir: cfg.HTTP.StaticDir,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.ListenAddr())
	}()

	logger.Info("server started",
		zap.String("addr", cfg.ListenAddr()),
		zap.String("timezone", loc.String()),
		zap.String("static_dir", cfg.HTTP.StaticDir),
	)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("fiber shutdown error", zap.Error(err))
	}

	logger.Info("server exiting")
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"swiftbid/cmd"
	httpadapter "swiftbid/internal/adapters/in/http"
	"swiftbid/internal/adapters/out/notify"
	"swiftbid/internal/adapters/out/postgres/bidrepo"
	"swiftbid/internal/adapters/out/postgres/deliveryrepo"
	"swiftbid/internal/core/ports"
	"swiftbid/internal/jobs"
	"swiftbid/internal/observability"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")
	configs := cmd.LoadConfig()

	setupLogger(configs.LogLevel)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&deliveryrepo.DeliveryDTO{}, &bidrepo.BidDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	hub := notify.NewWebSocketHub()
	publisher, closePublisher := buildPublisher(configs, hub)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := buildJobs(&app, configs)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := buildWebServer(&app, hub)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil &&
			err != stdhttp.ErrServerClosed {
			log.Fatalf("Web server stopped: %v", err)
		}
	}()

	waitForShutdown(e)
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

// buildPublisher assembles the notification chain: WebSocket pushes always,
// Kafka only when brokers are configured.
func buildPublisher(configs cmd.Config, hub *notify.WebSocketHub) (ports.EventPublisher, func()) {
	if len(configs.KafkaBrokers) == 0 {
		slog.Info("Kafka brokers not configured, events stay in-process")
		return notify.NewFanOutPublisher(hub), func() {}
	}

	kafkaPublisher := notify.NewKafkaPublisher(configs.KafkaBrokers, configs.KafkaTopic)
	closer := func() {
		if err := kafkaPublisher.Close(); err != nil {
			slog.Warn("Failed to close Kafka publisher", "error", err)
		}
	}

	return notify.NewFanOutPublisher(hub, kafkaPublisher), closer
}

func buildJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	return jobs.NewJobManager(
		app.CreateCancelStaleDeliveriesCommandHandler(),
		configs.StaleGraceMinutes,
		slog.Default(),
	)
}

func buildWebServer(app *cmd.CompositionRoot, hub *notify.WebSocketHub) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(observability.Middleware())

	server := httpadapter.NewServer(
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateSubmitBidCommandHandler(),
		app.CreateWithdrawBidCommandHandler(),
		app.CreateAcceptBidCommandHandler(),
		app.CreateStartDeliveryCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateAbortDeliveryCommandHandler(),
		app.CreateGetAvailableDeliveriesQueryHandler(),
		app.CreateGetCustomerDeliveriesQueryHandler(),
		app.CreateGetRiderBidsQueryHandler(),
	)
	server.RegisterRoutes(e)

	wsHandler := httpadapter.NewWSHandler(hub)
	wsHandler.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func waitForShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}

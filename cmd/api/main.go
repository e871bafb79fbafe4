package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"examapi/internal/config"
	handlers "examapi/internal/http/handler"
	"examapi/internal/http/middleware"
	"examapi/internal/otel"
	"examapi/internal/service"
	"examapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Initialize tracing; degrades to noop when no collector is configured
	shutdownTracing, err := otel.Init(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	// Select the log sink: local disk by default, S3-compatible when configured
	var store storage.Storage
	switch cfg.Logs.Backend {
	case config.BackendMinIO:
		store, err = storage.NewMinIO(cfg.MinIO)
	default:
		store, err = storage.NewLocal(cfg.Logs)
	}
	if err != nil {
		log.Fatalf("failed to initialize log storage: %v", err)
	}

	// Initialize services
	logSvc := service.NewLogService(store)
	answerSvc := service.NewMockAnswerService()
	checkSvc := service.NewCheckService(cfg.Check)
	proxySvc := service.NewProxyConfigService(cfg.Proxy)

	app := fiber.New(fiber.Config{
		ErrorHandler:      handlers.ErrorHandler(),
		EnablePrintRoutes: cfg.Debug(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	// Request metrics on a dedicated registry, exposed at /metrics
	reg := prometheus.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, logSvc, answerSvc, checkSvc, proxySvc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

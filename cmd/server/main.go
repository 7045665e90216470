package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/txdash/internal/adapter/confirm"
	httpAdapter "github.com/iho/txdash/internal/adapter/http"
	"github.com/iho/txdash/internal/adapter/http/handler"
	"github.com/iho/txdash/internal/adapter/http/middleware"
	"github.com/iho/txdash/internal/adapter/notify"
	"github.com/iho/txdash/internal/adapter/remote"
	"github.com/iho/txdash/internal/adapter/report"
	redisRepo "github.com/iho/txdash/internal/adapter/repository/redis"
	"github.com/iho/txdash/internal/infrastructure/config"
	"github.com/iho/txdash/internal/infrastructure/logger"
	"github.com/iho/txdash/internal/infrastructure/metrics"
	"github.com/iho/txdash/internal/infrastructure/redis"
	"github.com/iho/txdash/internal/usecase"
)

const limiterIdleTimeout = 10 * time.Minute

func main() {
	// .env is optional
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	defer app.Close()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      app.handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go app.cleanupLimiters(ctx)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("remote", cfg.RemoteBaseURL).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// app is the wired web host.
type app struct {
	handler     http.Handler
	dashboard   *usecase.Dashboard
	rateLimiter *middleware.RateLimiter
	redisClient *goredis.Client
}

// newApp wires every collaborator from cfg and performs the first fetch.
// A failed first fetch is logged and the dashboard starts empty.
func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	client := remote.New(cfg.RemoteBaseURL, cfg.RemoteTimeout,
		remote.WithLogger(log.With().Str("component", "remote").Logger()),
		remote.WithMetrics(m),
		remote.WithListRetries(cfg.RemoteListRetries),
	)

	a := &app{}

	// Error reports
	var reports interface {
		usecase.ReportDownloader
		handler.ReportReader
	}
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		log.Info().Msg("connected to redis")
		a.redisClient = redisClient
		reports = redisRepo.NewReportStore(redisClient, cfg.ReportTTL)
	} else {
		reports = report.NewMemoryStore()
	}

	queue := notify.NewQueue(notify.DefaultQueueSize, m)

	a.dashboard = usecase.NewDashboard(usecase.DashboardConfig{
		Client:     client,
		Notifier:   queue,
		Confirmer:  confirm.NewRequest(),
		Encoder:    report.NewCSVEncoder(),
		Downloader: reports,
		Logger:     log.With().Str("component", "dashboard").Logger(),
		PageSize:   cfg.DefaultPageSize,
	})
	if err := a.dashboard.Initialize(ctx); err != nil {
		log.Warn().Err(err).Msg("initial fetch failed")
	}

	a.rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m)

	a.handler = httpAdapter.NewRouter(httpAdapter.RouterConfig{
		DashboardHandler:    handler.NewDashboardHandler(a.dashboard, log),
		NotificationHandler: handler.NewNotificationHandler(queue),
		ReportHandler:       handler.NewReportHandler(reports, log),
		HealthHandler:       handler.NewHealthHandler(a.redisClient),
		Logger:              log,
		Metrics:             m,
		MetricsHandler:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		RateLimiter:         a.rateLimiter,
	})

	return a, nil
}

// cleanupLimiters drops idle per-IP limiters until ctx is done.
func (a *app) cleanupLimiters(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.rateLimiter.CleanupLimiters(limiterIdleTimeout)
		}
	}
}

func (a *app) Close() error {
	if a.redisClient != nil {
		return a.redisClient.Close()
	}
	return nil
}

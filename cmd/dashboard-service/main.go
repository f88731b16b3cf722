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

	"github.com/redis/go-redis/v9"

	"dashboard-service/internal/auth"
	"dashboard-service/internal/cache"
	"dashboard-service/internal/client"
	"dashboard-service/internal/config"
	"dashboard-service/internal/db"
	httphandler "dashboard-service/internal/http"
	"dashboard-service/internal/http/middleware"
	"dashboard-service/internal/logger"
	"dashboard-service/internal/repository"
	"dashboard-service/internal/routing"
	"dashboard-service/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			appLogger.Warn().Err(err).Msg("redis ping failed, dashboard cache will retry per request")
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				appLogger.Warn().Err(err).Msg("redis close")
			}
		}()
	} else {
		appLogger.Info().Msg("REDIS_ADDR not set, dashboard cache disabled")
	}

	journalRepo := repository.NewJournalRepository(database)
	analyticsClient := client.NewAnalyticsClient(cfg.Upstream.AnalyticsURL, cfg.Upstream.Timeout, appLogger)
	ticketClient := client.NewTicketClient(cfg.Upstream.TicketURL, cfg.Upstream.Timeout, appLogger)

	dashboardService := service.NewDashboardService(analyticsClient, cache.New(redisClient, cfg.Dashboard.CacheTTL), appLogger)
	ticketService := service.NewTicketService(ticketClient, journalRepo, appLogger)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(dashboardService, ticketService, cfg.HTTP.AttachmentMaxBytes, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.CORSAllowedOrigins, appLogger)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           routing.RewritePaths(router, routing.DefaultRules),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info().Str("addr", addr).Msg("starting dashboard service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error().Err(err).Msg("failed to start server")
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown")
	}
}

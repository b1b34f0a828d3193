package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/analytics"
	analyticsStore "github.com/MrJamesThe3rd/pledger/internal/analytics/store"
	"github.com/MrJamesThe3rd/pledger/internal/auth"
	"github.com/MrJamesThe3rd/pledger/internal/config"
	"github.com/MrJamesThe3rd/pledger/internal/database"
	"github.com/MrJamesThe3rd/pledger/internal/database/migrations"
	pledgerHttp "github.com/MrJamesThe3rd/pledger/internal/http"
	analyticsHandler "github.com/MrJamesThe3rd/pledger/internal/http/analytics"
	initiativeHandler "github.com/MrJamesThe3rd/pledger/internal/http/initiative"
	pledgeHandler "github.com/MrJamesThe3rd/pledger/internal/http/pledge"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	initiativeStore "github.com/MrJamesThe3rd/pledger/internal/initiative/store"
	"github.com/MrJamesThe3rd/pledger/internal/pledge"
	pledgeStore "github.com/MrJamesThe3rd/pledger/internal/pledge/store"
)

func main() {
	_ = godotenv.Load()

	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrations.Apply(migrateCtx, db); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	analyticsOpts := []analytics.Option{
		analytics.WithMinimumAmount(cfg.MinimumPledge()),
		analytics.WithTrendWindow(cfg.Analytics.TrendWindowDays),
		analytics.WithLeaderboardSize(cfg.Analytics.LeaderboardSize),
	}

	if rdb := connectRedis(cfg); rdb != nil {
		defer rdb.Close()

		analyticsOpts = append(analyticsOpts, analytics.WithCache(analytics.NewRedisCache(rdb), cfg.Redis.CacheTTL))
	}

	var (
		initiativeService = initiative.NewService(initiativeStore.New(db))
		pledgeService     = pledge.NewService(pledgeStore.New(db), pledge.WithMinimumAmount(cfg.MinimumPledge()))
		analyticsService  = analytics.NewService(analyticsStore.New(db), analyticsOpts...)
	)

	var (
		initiativeH = initiativeHandler.NewHandler(initiativeService)
		pledgeH     = pledgeHandler.NewHandler(pledgeService)
		analyticsH  = analyticsHandler.NewHandler(analyticsService, cfg.Analytics.DefaultRangeDays)
	)

	router := pledgerHttp.New(
		pledgerHttp.Options{Timeout: cfg.Server.Timeout, CORSOrigins: cfg.Server.CORSOrigins},
		auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		initiativeH,
		pledgeH,
		analyticsH,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)

	go func() {
		slog.Info("starting server", "port", server.Addr, "minimum_pledge", cfg.MinimumPledge())
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
		}
	case <-stopCtx.Done():
		slog.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}

// connectRedis returns nil when Redis is not configured or unreachable; the
// analytics reader then always queries Postgres.
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, analytics cache disabled", "addr", cfg.Redis.Addr, "error", err)
		rdb.Close()

		return nil
	}

	return rdb
}

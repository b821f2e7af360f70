package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/darshita2110/Crowd-Management-System/internal/app"
	"github.com/darshita2110/Crowd-Management-System/internal/clock"
	"github.com/darshita2110/Crowd-Management-System/internal/config"
	"github.com/darshita2110/Crowd-Management-System/internal/storage/postgres"
	transporthttp "github.com/darshita2110/Crowd-Management-System/internal/transport/http"
	"github.com/darshita2110/Crowd-Management-System/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.S().Fatalw("load config", "error", err)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		zap.S().Fatalw("init logger", "error", err)
	}
	defer func() { _ = zap.L().Sync() }()

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		zap.S().Fatalw("connect to db", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		zap.S().Fatalw("db ping", "error", err)
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		zap.S().Fatalw("apply migrations", "error", err)
	}

	clk := clock.NewSystem()
	eventRepo := postgres.NewEventRepository(pool)
	eventSvc := app.NewEventService(eventRepo, clk)
	obsRepo := postgres.NewObservationRepository(pool)
	obsSvc := app.NewObservationService(obsRepo, eventRepo, clk)
	zoneRepo := postgres.NewZoneRepository(pool)
	zoneSvc := app.NewZoneService(zoneRepo, clk)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	feedbackSvc := app.NewFeedbackService(feedbackRepo, clk)
	reportRepo := postgres.NewReportRepository(pool)
	reportSvc := app.NewLostPersonService(reportRepo, clk)

	handler := transporthttp.NewRouter(transporthttp.Services{
		Observations: obsSvc,
		Zones:        zoneSvc,
		Events:       eventSvc,
		Feedback:     feedbackSvc,
		LostPersons:  reportSvc,
	}, cfg.CORSOrigins)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	zap.S().Infow("api listening", "port", cfg.Port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Errorw("server error", "error", err)
		}
	case <-stopCtx.Done():
		zap.S().Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.S().Errorw("server shutdown error", "error", err)
	}
	zap.S().Info("server stopped")
}

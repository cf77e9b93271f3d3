package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"compare-audius-be/internal/bootstrap"
	"compare-audius-be/internal/config"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/server"
	"compare-audius-be/internal/tracer"
	"compare-audius-be/pkg/database"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Auth.Validate(); err != nil {
		log.Panicf("Invalid auth configuration: %v", err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	defer sysLogger.Sync()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.App.OtelEnabled)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDB(database.GormConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg, sysLogger)
	defer container.Close()

	srv := server.New(cfg, container)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 5. Run the server and background workers until a signal arrives
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return container.RevalidationService.Start(gctx)
	})
	g.Go(func() error {
		return container.WebSocketHub.Run(gctx)
	})
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		sysLogger.Info("HTTP", "Shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sysLogger.Error("HTTP", "Server stopped with error", map[string]interface{}{"error": err.Error()})
	}
}

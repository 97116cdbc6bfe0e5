package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/becomethebagfx/us-mission-control/internal/mission/api"
	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	"github.com/becomethebagfx/us-mission-control/internal/mission/config"
	"github.com/becomethebagfx/us-mission-control/internal/mission/httpserver"
	"github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/ui"
	"github.com/becomethebagfx/us-mission-control/internal/mission/observability"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", os.Getenv("MISSION_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	service, err := buildBackend(cfg.Backend)
	if err != nil {
		logger.Fatal("build backend service", zap.Error(err))
	}

	srv, err := httpserver.New(httpserver.Config{
		Address:      cfg.Server.Address,
		BasePath:     cfg.Server.BasePath,
		Logger:       logger,
		UI:           ui.Dependencies{Backend: service},
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	})
	if err != nil {
		logger.Fatal("build http server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	logger.Info("mission control listening",
		zap.String("address", cfg.Server.Address),
		zap.String("base_path", cfg.Server.BasePath),
		zap.Bool("demo_mode", cfg.Backend.DemoMode),
	)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}

func buildBackend(cfg config.BackendConfig) (backend.Service, error) {
	if cfg.DemoMode {
		return backend.NewStaticService(), nil
	}

	client, err := api.NewClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout})
	if err != nil {
		return nil, err
	}
	return backend.NewHTTPService(client), nil
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"arith-service/internal/api"
	"arith-service/internal/arithmetic"
	"arith-service/internal/config"
	"arith-service/internal/logger"
	"arith-service/internal/metrics"
	"arith-service/internal/server"

	"go.uber.org/zap"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	zap.ReplaceGlobals(zl)
	defer zl.Sync()

	sugar := zl.Sugar()

	opts := api.Options{
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       sugar.With("module", "api"),
	}
	if cfg.MetricsEnabled {
		opts.Metrics = metrics.New()
	}
	router := api.NewRouter(arithmetic.Operations(), opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sugar.Infof("Calculator starting on %s (metrics enabled: %t)", cfg.Addr(), cfg.MetricsEnabled)
	if err := server.New(cfg, router).Run(ctx); err != nil {
		sugar.Fatalf("Server stopped: %v", err)
	}
	sugar.Infof("Calculator stopped")
}

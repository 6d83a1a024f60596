// Command proftafla-server runs the exam-schedule HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ugla-hub/proftafla/config"
	"github.com/ugla-hub/proftafla/internal/application/query"
	"github.com/ugla-hub/proftafla/internal/infrastructure/external/ugla"
	"github.com/ugla-hub/proftafla/internal/infrastructure/persistence/cache"
	httpserver "github.com/ugla-hub/proftafla/internal/interface/http"
	"github.com/ugla-hub/proftafla/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Output:    os.Stdout,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: cfg.App.Debug,
	}).With(
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := newStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("cache store init failed", logger.Err(err))
	}
	defer store.Close()

	resultCache := cache.New(store, cfg.Cache.Prefix, cfg.Cache.TTL, log)

	client := ugla.NewClient(ugla.Config{
		BaseURL: cfg.Ugla.BaseURL,
		Timeout: cfg.Ugla.Timeout,
		Logger:  log,
	})

	svc := query.NewService(client, resultCache, log)

	srv := httpserver.NewServer(httpserver.DefaultConfig(cfg.Server.Addr), svc, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Fatal("http server failed", logger.Err(err))
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", logger.Err(err))
	}
}

func newStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (cache.Store, error) {
	if cfg.Cache.Disabled {
		log.Warn("redis disabled, using in-process memory store")
		return cache.NewMemoryStore(), nil
	}
	return cache.NewRedisStore(ctx, cfg.Cache.URL)
}

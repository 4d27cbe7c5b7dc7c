package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/minibank/minibank/internal/account"
	"github.com/minibank/minibank/internal/config"
	"github.com/minibank/minibank/internal/docstore"
	"github.com/minibank/minibank/internal/infra"
	"github.com/minibank/minibank/internal/logging"
	"github.com/minibank/minibank/internal/notification"
	"github.com/minibank/minibank/internal/routes"
	"github.com/minibank/minibank/internal/server"
	"github.com/minibank/minibank/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	var store docstore.Store
	switch cfg.StoreBackend {
	case config.BackendJSONBin:
		store = docstore.NewJSONBinStore(cfg.JSONBinURL, cfg.JSONBinBinID, cfg.JSONBinKey, cfg.StoreTimeout)
	case config.BackendFile:
		store = docstore.NewFileStore(cfg.UsersFile)
	case config.BackendPostgres:
		pool, err := infra.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("connect postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store = docstore.NewPostgresStore(pool, "users")
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = infra.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("connect redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		}()
	}

	var sessions session.Resolver
	if cache != nil {
		sessions = session.NewRedisStore(cache, cfg.SessionTTL)
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	var notifier notification.Notifier = notification.NewLoggerNotifier(logger)
	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = infra.NewNATSConn(cfg.NATSURL)
		if err != nil {
			logger.Error("connect nats", "error", err)
			os.Exit(1)
		}
		defer natsConn.Close()
		notifier = notification.NewNATSNotifier(natsConn, notification.TransferSubject)
	}

	repo := account.NewRepository(store, logger)
	if err := repo.Bootstrap(ctx); err != nil {
		logger.Error("bootstrap user collection", "error", err)
		os.Exit(1)
	}

	srv, err := server.New(cfg, routes.Deps{
		Cfg:      cfg,
		Store:    store,
		Cache:    cache,
		Sessions: sessions,
		Notifier: notifier,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	logger.Info("server starting", "address", cfg.Address(), "store", cfg.StoreBackend)

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}

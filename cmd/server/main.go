package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/JonMunkholm/storefront/internal/config"
	"github.com/JonMunkholm/storefront/internal/core"
	_ "github.com/JonMunkholm/storefront/internal/core/industries" // Register all industries
	"github.com/JonMunkholm/storefront/internal/database"
	"github.com/JonMunkholm/storefront/internal/logging"
	"github.com/JonMunkholm/storefront/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_max_conns", cfg.Database.MaxConns,
		"max_catalog_items", cfg.Form.MaxCatalogItems,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"api_key_required", cfg.Security.RequireAPIKey,
	)
	slog.Debug("configuration", "config", cfg.String())

	if err := run(cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return err
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	if u, err := url.Parse(cfg.Database.URL); err == nil {
		slog.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	}

	if cfg.Database.AutoMigrate {
		applied, err := database.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		slog.Info("migrations applied", "count", len(applied), "names", applied)
	}

	service := core.NewService(core.NewPostgresRepository(pool), core.ServiceOptions{
		MaxCatalogItems:      cfg.Form.MaxCatalogItems,
		MaxConcurrentBatches: cfg.Form.MaxConcurrentBatches,
		BatchWait:            cfg.Form.BatchWait,
	})

	slog.Info("industries registered",
		"count", core.IndustryCount(),
		"tags", core.Tags(),
	)

	server := web.NewServer(service, cfg)

	// Graceful shutdown
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}

		// Let catalog batches still in their transaction finish before the pool closes.
		if status := service.BatchStatus(); status.Active > 0 {
			slog.Info("waiting for catalog batches", "active", status.Active)
			if err := service.WaitForBatches(shutdownCtx); err != nil {
				slog.Warn("catalog batches did not finish in time", "error", err)
			}
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-shutdownDone
	slog.Info("server stopped")
	return nil
}

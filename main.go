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

	"github.com/redis/go-redis/v9"

	"food-ordering/config"
	"food-ordering/db"
	"food-ordering/httpapi"
	"food-ordering/logger"
	"food-ordering/notify"
	"food-ordering/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Server.Mode)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			runMigrate(cfg, log)
			return
		case "order":
			if err := runOrder(cfg, os.Args[2:], os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, "order:", err)
				os.Exit(1)
			}
			return
		}
	}

	if err := serve(cfg, log); err != nil {
		log.Error("server stopped", "action", "server_failed", "error", err)
		os.Exit(1)
	}
}

func serve(cfg *config.Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx, cfg.DatabaseURL()); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := db.RunMigrations(cfg.DatabaseURL(), log); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var catalog services.CatalogReader = services.NewCatalogStore(db.Pool)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, catalog served from postgres until it recovers", "action", "redis_ping_failed", "addr", cfg.Redis.Addr, "error", err)
		}
		catalog = services.NewCatalogCache(rdb, catalog, cfg.Redis.CacheTTL, log)
	}

	sender, err := newSender(cfg.Notify, log)
	if err != nil {
		return err
	}
	gateway := services.NewNotificationGateway(sender, cfg.Notify.Provider, cfg.Notify.To, services.NewNotificationLog(db.Pool), log)

	handler := httpapi.NewHandler(catalog, gateway, log, cfg.IsDevelopment())
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           httpapi.NewRouter(handler, cfg.Server.CORSAllowOrigins, log),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "action", "server_started", "port", cfg.Server.Port, "mode", cfg.Server.Mode, "provider", cfg.Notify.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "action", "server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newSender(cfg config.NotifyConfig, log *slog.Logger) (notify.Sender, error) {
	switch cfg.Provider {
	case config.ProviderTwilio:
		return notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom), nil
	case config.ProviderTelegram:
		s, err := notify.NewTelegramSender(cfg.TelegramToken)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.ProviderLog:
		return notify.NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("unknown notify provider %q", cfg.Provider)
	}
}

func runMigrate(cfg *config.Config, log *slog.Logger) {
	if err := db.RunMigrations(cfg.DatabaseURL(), log); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
	fmt.Println("Migrations applied.")
}

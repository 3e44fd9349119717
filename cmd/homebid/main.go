package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benx421/homebid/internal/config"
	"github.com/benx421/homebid/internal/db"
	"github.com/benx421/homebid/internal/handlers"
	"github.com/benx421/homebid/internal/middleware"
	"github.com/benx421/homebid/internal/notify"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Auth.Validate(); err != nil {
		slog.Error("invalid auth configuration", "error", err)
		os.Exit(1)
	}

	// homebid token <user-id> [ttl] prints a bearer token for local testing
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := printToken(&cfg.Auth, os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting homebid api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"notifications", cfg.Notify.Enabled,
	)

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	notifier, closeNotifier := newNotifier(&cfg.Notify, logger)
	defer closeNotifier()

	router, err := handlers.NewRouter(database, cfg, notifier, logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// newNotifier queues notifications on Redis when enabled and otherwise logs
// them in-process.
func newNotifier(cfg *config.NotifyConfig, logger *slog.Logger) (notify.Notifier, func()) {
	if !cfg.Enabled {
		return notify.NewDirectNotifier(notify.NewLogSink(logger)), func() {}
	}

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	logger.Info("notifications queued", "redis", cfg.RedisAddr, "queue", cfg.Queue)

	return notify.NewAsynqNotifier(client, cfg.Queue, cfg.MaxRetry), func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close notification client", "error", err)
		}
	}
}

func printToken(cfg *config.AuthConfig, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: homebid token <user-id> [ttl]")
	}
	actorID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	ttl := 24 * time.Hour
	if len(args) > 1 {
		if ttl, err = time.ParseDuration(args[1]); err != nil {
			return fmt.Errorf("invalid ttl: %w", err)
		}
	}

	token, err := middleware.IssueToken(cfg, actorID, ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

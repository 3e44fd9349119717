package main

import (
	"log/slog"
	"os"

	"github.com/benx421/homebid/internal/config"
	"github.com/benx421/homebid/internal/notify"
	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	if !cfg.Notify.Enabled {
		logger.Error("notifications are disabled; set NOTIFY_ENABLED=true to run the worker")
		os.Exit(1)
	}

	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Notify.RedisAddr,
			Password: cfg.Notify.RedisPassword,
		},
		asynq.Config{
			Concurrency: cfg.Notify.Concurrency,
			Queues:      map[string]int{cfg.Notify.Queue: 1},
		},
	)

	mux := asynq.NewServeMux()
	notify.NewProcessor(notify.NewLogSink(logger)).Register(mux)

	logger.Info("starting notification worker",
		"redis", cfg.Notify.RedisAddr,
		"queue", cfg.Notify.Queue,
		"concurrency", cfg.Notify.Concurrency,
	)

	// Run blocks until SIGINT or SIGTERM and then drains in-flight tasks.
	if err := server.Run(mux); err != nil {
		logger.Error("notification worker stopped", "error", err)
		os.Exit(1)
	}
}

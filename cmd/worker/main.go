package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"files-manager/config"
	"files-manager/internal/app"
	"files-manager/internal/logging"
	"files-manager/internal/service"
	"files-manager/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		slog.Error("ошибка загрузки конфигурации", "error", err)
		os.Exit(1)
	}
	logger := logging.Init(cfg.Log.Level, cfg.Log.Format)

	if cfg.Queue.Driver != config.DriverRedis {
		logger.Error("отдельному воркеру нужна очередь redis, очередь memory обслуживается процессом API", "queue", cfg.Queue.Driver)
		os.Exit(1)
	}

	stores, err := app.Open(ctx, cfg)
	if err != nil {
		logger.Error("не удалось подключить хранилища", "error", err)
		os.Exit(1)
	}
	defer stores.Close(context.Background())

	recovered, err := stores.RedisQueue.Recover(ctx)
	if err != nil {
		logger.Error("не удалось вернуть неподтверждённые задачи", "error", err)
	} else if recovered > 0 {
		logger.Info("неподтверждённые задачи возвращены в очередь", "count", recovered)
	}

	thumbnails := service.NewThumbnailService(stores.Files, stores.Blobs)
	w := worker.New(stores.Queue, thumbnails, worker.Config{
		Concurrency:  cfg.Worker.Concurrency,
		MaxAttempts:  cfg.Worker.MaxAttempts,
		RetryBackoff: cfg.Worker.RetryBackoff,
		DeadLetter:   cfg.Worker.DeadLetter,
	}, logger)

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("воркер остановлен с ошибкой", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"files-manager/config"
	_ "files-manager/docs"
	"files-manager/internal/app"
	"files-manager/internal/handler"
	"files-manager/internal/logging"
	"files-manager/internal/service"
	"files-manager/internal/worker"
)

// @title files-manager
// @version 1.0
// @description REST API для работы с файлами и папками

// @host localhost:5000

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Token
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		slog.Error("ошибка загрузки конфигурации", "error", err)
		os.Exit(1)
	}
	logger := logging.Init(cfg.Log.Level, cfg.Log.Format)

	stores, err := app.Open(ctx, cfg)
	if err != nil {
		logger.Error("не удалось подключить хранилища", "error", err)
		os.Exit(1)
	}
	defer stores.Close(context.Background())

	authService := service.NewAuthenticationService(stores.Sessions, stores.Users, stores.Hasher)
	userService := service.NewUserService(stores.Users, stores.Hasher)
	fileService := service.NewFileService(stores.Files, stores.Blobs, stores.Queue, stores.Sessions)
	statusService := service.NewStatusService(stores.Sessions, stores.Users, stores.Files)

	srv, router := config.SetupServer(&cfg.Server)
	handler.SetupRoutes(router, handler.Handlers{
		Users:          handler.NewUserHandler(userService),
		Authentication: handler.NewAuthenticationHandler(authService),
		Files:          handler.NewFileHandler(fileService, cfg.Server.MaxBodyBytes),
		Status:         handler.NewStatusHandler(statusService),
		Auth:           authService,
		Logger:         logger,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	// очередь в памяти видна только этому процессу, поэтому превью строятся здесь же
	if cfg.Queue.Driver == config.DriverMemory {
		thumbnails := service.NewThumbnailService(stores.Files, stores.Blobs)
		w := worker.New(stores.Queue, thumbnails, workerConfig(&cfg.Worker), logger)
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Error("воркер превью остановлен с ошибкой", "error", err)
			}
		}()
	}

	runServer(ctx, srv, cfg.Server.ShutdownTimeout)
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}

func workerConfig(cfg *config.WorkerConfig) worker.Config {
	return worker.Config{
		Concurrency:  cfg.Concurrency,
		MaxAttempts:  cfg.MaxAttempts,
		RetryBackoff: cfg.RetryBackoff,
		DeadLetter:   cfg.DeadLetter,
	}
}

func runServer(ctx context.Context, server *http.Server, shutdownTimeout time.Duration) {
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("сервер запущен", "addr", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("ошибка работы сервера", "error", err)
		}
		return
	case sig := <-signalChannel:
		slog.Info("получен сигнал остановки работы сервера", "signal", sig.String())
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, shutdownTimeout)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		slog.Error("ошибка при остановке сервера", "error", err)
	} else {
		slog.Info("сервер успешно остановлен")
	}
}

// Package app : сборка хранилищ по конфигурации, общая для API и воркера
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"files-manager/config"
	"files-manager/internal/ports"
	"files-manager/internal/queue"
	"files-manager/internal/repository"
	"files-manager/internal/security"
	"files-manager/internal/storage"
)

// Stores : подключённые хранилища и очередь
type Stores struct {
	Users    ports.UserRepository
	Files    ports.FileRepository
	Sessions ports.SessionStore
	Blobs    ports.BlobStore
	Queue    ports.JobQueue
	Hasher   ports.PasswordHasher

	// RedisQueue : nil при queue.driver = memory
	RedisQueue *queue.RedisQueue

	closers []func(ctx context.Context) error
}

// Open : подключается к БД, Redis и хранилищу содержимого.
// При ошибке уже открытые соединения закрываются.
func Open(ctx context.Context, cfg *config.AppConfig) (stores *Stores, err error) {
	stores = &Stores{Hasher: security.NewPasswordHasher(cfg.Security.LegacySHA1)}
	defer func() {
		if err != nil {
			stores.Close(context.Background())
			stores = nil
		}
	}()

	if err := stores.openDatabase(ctx, &cfg.Database); err != nil {
		return nil, err
	}

	redisClient, err := config.SetupRedis(&cfg.Redis)
	if err != nil {
		return nil, err
	}
	stores.closers = append(stores.closers, func(context.Context) error { return redisClient.Close() })
	stores.Sessions = repository.NewSessionRepository(redisClient.Client, cfg.Session.Prefix, cfg.Session.TTL)

	switch cfg.Queue.Driver {
	case config.DriverRedis:
		stores.RedisQueue = queue.NewRedisQueue(redisClient.Client, cfg.Queue.Name, cfg.Worker.PollTimeout)
		stores.Queue = stores.RedisQueue
	case config.DriverMemory:
		stores.Queue = queue.NewMemoryQueue(cfg.Queue.Buffer, time.Second)
	}

	switch cfg.Storage.Driver {
	case config.DriverLocal:
		stores.Blobs, err = storage.NewLocalStore(cfg.Storage.FolderPath)
	case config.DriverS3:
		client, s3Err := storage.NewS3Client(ctx, &cfg.Storage.S3)
		if s3Err != nil {
			return nil, s3Err
		}
		stores.Blobs = storage.NewS3Store(client, cfg.Storage.S3.Bucket, cfg.Storage.S3.Prefix)
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия хранилища файлов: %w", err)
	}

	slog.Info("хранилища подключены",
		"database", cfg.Database.Driver,
		"storage", cfg.Storage.Driver,
		"queue", cfg.Queue.Driver,
	)
	return stores, nil
}

func (s *Stores) openDatabase(ctx context.Context, cfg *config.DatabaseConfig) error {
	switch cfg.Driver {
	case config.DriverMongo:
		mongoDB, err := config.SetupMongo(ctx, cfg)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, mongoDB.Close)
		s.Users = repository.NewMongoUserRepository(mongoDB.DB)
		s.Files = repository.NewMongoFileRepository(mongoDB.DB)
	default:
		db, err := config.SetupDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, func(context.Context) error { return db.Close() })
		s.Users = repository.NewUserRepository(db)
		s.Files = repository.NewFileRepository(db)
	}
	return nil
}

// Close : закрывает соединения в обратном порядке
func (s *Stores) Close(ctx context.Context) {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil

	if err := errors.Join(errs...); err != nil {
		slog.Error("ошибка при закрытии хранилищ", "error", err)
	}
}

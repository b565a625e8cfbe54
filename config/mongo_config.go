package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDatabase struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func SetupMongo(ctx context.Context, cfg *DatabaseConfig) (*MongoDatabase, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ошибка пинга MongoDB: %w", err)
	}

	slog.Info("подключение к MongoDB успешно выполнено", "database", cfg.MongoName)
	return &MongoDatabase{
		Client: client,
		DB:     client.Database(cfg.MongoName),
	}, nil
}

func (m *MongoDatabase) Close(ctx context.Context) error {
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("ошибка закрытия соединения с MongoDB: %w", err)
	}
	return nil
}

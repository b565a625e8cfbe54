// Package queue : очереди задач на генерацию превью
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"files-manager/internal/model"
	"files-manager/internal/ports"
	"files-manager/internal/util"

	"github.com/redis/go-redis/v9"
)

// RedisQueue : надёжная очередь на списках Redis.
// Dequeue переносит задачу в <name>:processing, Ack убирает её оттуда.
type RedisQueue struct {
	client      redis.UniversalClient
	name        string
	pollTimeout time.Duration
}

func NewRedisQueue(client redis.UniversalClient, name string, pollTimeout time.Duration) *RedisQueue {
	return &RedisQueue{client: client, name: name, pollTimeout: pollTimeout}
}

func (q *RedisQueue) processingKey() string {
	return q.name + ":processing"
}

func (q *RedisQueue) deadLetterKey() string {
	return q.name + ":failed"
}

func (q *RedisQueue) Enqueue(ctx context.Context, job model.ThumbnailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return util.LogError("[RedisQueue] ошибка сериализации задачи", err)
	}

	if err := q.client.LPush(ctx, q.name, payload).Err(); err != nil {
		return util.LogError("[RedisQueue] ошибка постановки задачи в очередь", err)
	}
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context) (*ports.Delivery, bool, error) {
	payload, err := q.client.BLMove(ctx, q.name, q.processingKey(), "RIGHT", "LEFT", q.pollTimeout).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("[RedisQueue] ошибка чтения очереди: %w", err)
	}

	ack := func(ctx context.Context) error {
		return q.client.LRem(ctx, q.processingKey(), 1, payload).Err()
	}

	var job model.ThumbnailJob
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		// битую задачу повторять бессмысленно
		if ackErr := ack(ctx); ackErr != nil {
			slog.Error("[RedisQueue] не удалось убрать битую задачу", "error", ackErr)
		}
		return nil, false, fmt.Errorf("[RedisQueue] некорректная задача %q: %w", payload, err)
	}

	return &ports.Delivery{Job: job, Ack: ack}, true, nil
}

func (q *RedisQueue) DeadLetter(ctx context.Context, job model.ThumbnailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.deadLetterKey(), payload).Err()
}

// Recover : возвращает в очередь задачи, не подтверждённые упавшим воркером.
// Вызывать при старте, пока другие воркеры не читают очередь.
func (q *RedisQueue) Recover(ctx context.Context) (int, error) {
	recovered := 0
	for {
		err := q.client.LMove(ctx, q.processingKey(), q.name, "RIGHT", "RIGHT").Err()
		if errors.Is(err, redis.Nil) {
			return recovered, nil
		}
		if err != nil {
			return recovered, util.LogError("[RedisQueue] ошибка возврата задач в очередь", err)
		}
		recovered++
	}
}

// Len : количество задач, ожидающих обработки
func (q *RedisQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.name).Result()
}

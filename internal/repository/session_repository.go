package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"files-manager/internal/util"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionRepository : сессии в Redis, ключ prefix+token, значение id пользователя.
// TTL отсчитывается от выдачи и при чтении не продлевается.
type SessionRepository struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewSessionRepository(client redis.UniversalClient, prefix string, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, prefix: prefix, ttl: ttl}
}

// Issue : выдаёт новый токен для пользователя
func (r *SessionRepository) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()

	cmd := r.client.Set(ctx, r.key(token), userID, r.ttl)
	if err := cmd.Err(); err != nil {
		return "", util.LogError("[SessionRepo] ошибка сохранения сессии в Redis", err)
	}
	if cmd.Val() != "OK" {
		return "", fmt.Errorf("[SessionRepo] неожиданный ответ Redis: %s", cmd.Val())
	}

	return token, nil
}

// Resolve : id пользователя по токену
func (r *SessionRepository) Resolve(ctx context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, nil
	}

	userID, err := r.client.Get(ctx, r.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	} else if err != nil {
		return "", false, util.LogError("[SessionRepo] ошибка чтения сессии из Redis", err)
	}

	return userID, true, nil
}

// Revoke : удаление отсутствующего ключа не ошибка
func (r *SessionRepository) Revoke(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, r.key(token)).Err(); err != nil {
		return util.LogError("[SessionRepo] ошибка удаления сессии из Redis", err)
	}
	return nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *SessionRepository) key(token string) string {
	return r.prefix + token
}

package ports

import "context"

// SessionStore : опаковые токены сессий в key-value хранилище с TTL
type SessionStore interface {
	Issue(ctx context.Context, userID string) (string, error)
	// Resolve : ok=false, если токен никогда не выдавался или истёк
	Resolve(ctx context.Context, token string) (userID string, ok bool, err error)
	Revoke(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}

package ports

import (
	"context"

	"files-manager/internal/model"
)

// UserRepository : FindBy* возвращают common.ErrNotFound, Create на занятый email common.ErrAlreadyExists
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Count(ctx context.Context) (int64, error)
}

type UserService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Me(ctx context.Context, userID string) (*model.User, error)
}

type AuthenticationService interface {
	Connect(ctx context.Context, email, password string) (string, error)
	Disconnect(ctx context.Context, token string) error
	Identify(ctx context.Context, token string) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

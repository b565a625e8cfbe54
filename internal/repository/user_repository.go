package repository

import (
	"context"
	"database/sql"
	"errors"

	"files-manager/config"
	"files-manager/internal/common"
	"files-manager/internal/model"
	"files-manager/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// Create : сохраняет нового пользователя, занятый email даёт common.ErrAlreadyExists
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (id, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING id, email, password_hash, created_at
	`

	id := user.ID
	if id == "" {
		id = uuid.NewString()
	}

	createdUser := &model.User{}
	err := r.QueryRowxContext(ctx, query, id, user.Email, user.PasswordHash).StructScan(createdUser)
	if isUniqueViolation(err) {
		return nil, common.ErrAlreadyExists
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByID : ищет пользователя по id
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if !validUUID(id) {
		return nil, common.ErrNotFound
	}

	query := `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`
	return r.findOne(ctx, query, email)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, r, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, util.LogError("[UserRepo] не удалось посчитать пользователей", err)
	}
	return count, nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*model.User, error) {
	var user model.User
	err := sqlx.GetContext(ctx, r, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

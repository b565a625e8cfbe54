package service

import (
	"context"
	"errors"
	"log/slog"

	"files-manager/internal/common"
	"files-manager/internal/model"
	"files-manager/internal/ports"
	"files-manager/internal/util"
)

type UserService struct {
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
}

func NewUserService(userRepository ports.UserRepository, hasher ports.PasswordHasher) *UserService {
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
	}
}

func alreadyExists() error {
	return common.NewError(common.ErrAlreadyExists, "Already exist")
}

// Register : email уникален, гонку двух регистраций ловит уникальный индекс хранилища
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, common.Validation("Missing email")
	}
	if password == "" {
		return nil, common.Validation("Missing password")
	}

	_, err := s.userRepository.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, alreadyExists()
	case !errors.Is(err, common.ErrNotFound):
		return nil, util.LogError("[UserService] ошибка проверки email", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, util.LogError("[UserService] не удалось создать хэш пароля", err)
	}

	user, err := s.userRepository.Create(ctx, &model.User{Email: email, PasswordHash: hash})
	if errors.Is(err, common.ErrAlreadyExists) {
		return nil, alreadyExists()
	}
	if err != nil {
		return nil, util.LogError("[UserService] не удалось создать пользователя", err)
	}

	slog.Info("[UserService] пользователь зарегистрирован", "user_id", user.ID)
	return user, nil
}

// Me : пользователь сессии, которого уже нет в хранилище, считается неавторизованным
func (s *UserService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepository.FindByID(ctx, userID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrUnauthorized
	}
	if err != nil {
		return nil, util.LogError("[UserService] ошибка поиска пользователя", err)
	}
	return user, nil
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"files-manager/internal/common"
	"files-manager/internal/ports"
	"files-manager/internal/util"
)

// AuthenticationService : обмен email/пароля на токен сессии и обратно на пользователя
type AuthenticationService struct {
	sessions       ports.SessionStore
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
}

func NewAuthenticationService(
	sessions ports.SessionStore,
	userRepository ports.UserRepository,
	hasher ports.PasswordHasher,
) *AuthenticationService {
	return &AuthenticationService{
		sessions:       sessions,
		userRepository: userRepository,
		hasher:         hasher,
	}
}

// Connect : неизвестный email и неверный пароль неразличимы для клиента
func (s *AuthenticationService) Connect(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrUnauthorized
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, common.ErrNotFound) {
		return "", common.ErrUnauthorized
	}
	if err != nil {
		return "", util.LogError("[AuthenticationService] ошибка поиска пользователя", err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", common.ErrUnauthorized
	}

	token, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return "", util.LogError("[AuthenticationService] не удалось выдать токен", err)
	}

	slog.Info("[AuthenticationService] пользователь вошёл", "user_id", user.ID)
	return token, nil
}

// Disconnect : токен, который уже не действует, даёт Unauthorized
func (s *AuthenticationService) Disconnect(ctx context.Context, token string) error {
	userID, err := s.Identify(ctx, token)
	if err != nil {
		return err
	}

	if err := s.sessions.Revoke(ctx, token); err != nil {
		return util.LogError("[AuthenticationService] не удалось отозвать токен", err)
	}

	slog.Info("[AuthenticationService] пользователь вышел", "user_id", userID)
	return nil
}

func (s *AuthenticationService) Identify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrUnauthorized
	}

	userID, ok, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return "", util.LogError("[AuthenticationService] ошибка проверки токена", err)
	}
	if !ok {
		return "", common.ErrUnauthorized
	}

	return userID, nil
}

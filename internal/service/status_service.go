package service

import (
	"context"

	"files-manager/internal/ports"

	"golang.org/x/sync/errgroup"
)

type StatusService struct {
	sessions       ports.SessionStore
	userRepository ports.UserRepository
	fileRepository ports.FileRepository
}

func NewStatusService(sessions ports.SessionStore, userRepository ports.UserRepository, fileRepository ports.FileRepository) *StatusService {
	return &StatusService{
		sessions:       sessions,
		userRepository: userRepository,
		fileRepository: fileRepository,
	}
}

// Status : доступность Redis и хранилища метаданных
func (s *StatusService) Status(ctx context.Context) ports.Status {
	var status ports.Status

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		status.Redis = s.sessions.Ping(gctx) == nil
		return nil
	})
	group.Go(func() error {
		status.DB = s.fileRepository.Ping(gctx) == nil
		return nil
	})
	_ = group.Wait()

	return status
}

func (s *StatusService) Stats(ctx context.Context) (ports.Stats, error) {
	var stats ports.Stats

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		n, err := s.userRepository.Count(gctx)
		stats.Users = n
		return err
	})
	group.Go(func() error {
		n, err := s.fileRepository.Count(gctx)
		stats.Files = n
		return err
	})

	if err := group.Wait(); err != nil {
		return ports.Stats{}, err
	}
	return stats, nil
}

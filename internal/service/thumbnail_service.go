package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"files-manager/internal/common"
	"files-manager/internal/imaging"
	"files-manager/internal/model"
	"files-manager/internal/ports"
)

var ErrFileNotFound = errors.New("file not found")

// ThumbnailService : генерация превью по задаче из очереди.
// Повторная обработка той же задачи перезаписывает те же превью.
type ThumbnailService struct {
	fileRepository ports.FileRepository
	blobStore      ports.BlobStore
}

func NewThumbnailService(fileRepository ports.FileRepository, blobStore ports.BlobStore) *ThumbnailService {
	return &ThumbnailService{fileRepository: fileRepository, blobStore: blobStore}
}

// Process : каждая ширина обрабатывается отдельно, ошибки по ширинам собираются в одну
func (s *ThumbnailService) Process(ctx context.Context, job model.ThumbnailJob) error {
	if job.FileID == "" {
		return errors.New("missing fileId")
	}
	if job.UserID == "" {
		return errors.New("missing userId")
	}

	record, err := s.fileRepository.FindOwned(ctx, job.FileID, job.UserID)
	if errors.Is(err, common.ErrNotFound) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("[ThumbnailService] ошибка поиска файла %s: %w", job.FileID, err)
	}

	if record.Kind != model.KindImage {
		slog.Warn("[ThumbnailService] файл не изображение, превью не нужны", "file_id", record.ID, "kind", record.Kind)
		return nil
	}

	original, err := s.blobStore.Get(ctx, record.ContentRef)
	if err != nil {
		return fmt.Errorf("[ThumbnailService] не удалось прочитать оригинал %s: %w", record.ID, err)
	}

	var errs []error
	for _, width := range model.ThumbnailWidths {
		if err := s.processWidth(ctx, record, original, width); err != nil {
			slog.Error("[ThumbnailService] превью не создано", "file_id", record.ID, "width", width, "error", err)
			errs = append(errs, fmt.Errorf("ширина %d: %w", width, err))
		}
	}

	return errors.Join(errs...)
}

func (s *ThumbnailService) processWidth(ctx context.Context, record *model.FileRecord, original []byte, width int) error {
	thumbnail, err := imaging.Thumbnail(original, width)
	if err != nil {
		return err
	}
	return s.blobStore.PutVariant(ctx, record.ContentRef, width, thumbnail)
}

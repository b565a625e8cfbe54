package service

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"path/filepath"
	"strconv"

	"files-manager/internal/common"
	"files-manager/internal/model"
	"files-manager/internal/ports"
	"files-manager/internal/util"
)

const defaultMimeType = "application/octet-stream"

// FileService : каталог файлов и папок. Блоб пишется до записи метаданных,
// транзакции между ними нет.
type FileService struct {
	fileRepository ports.FileRepository
	blobStore      ports.BlobStore
	queue          ports.JobQueue
	sessions       ports.SessionStore
}

func NewFileService(
	fileRepository ports.FileRepository,
	blobStore ports.BlobStore,
	queue ports.JobQueue,
	sessions ports.SessionStore,
) *FileService {
	return &FileService{
		fileRepository: fileRepository,
		blobStore:      blobStore,
		queue:          queue,
		sessions:       sessions,
	}
}

// CreateFolder : создаёт папку в корне или в существующей папке
func (s *FileService) CreateFolder(ctx context.Context, ownerID, name string, parent model.ParentRef, isPublic bool) (*model.FileRecord, error) {
	if name == "" {
		return nil, common.Validation("Missing name")
	}

	if err := s.checkParent(ctx, parent); err != nil {
		return nil, err
	}

	record, err := s.fileRepository.Insert(ctx, &model.FileRecord{
		OwnerID:  ownerID,
		Name:     name,
		Kind:     model.KindFolder,
		Parent:   parent,
		IsPublic: isPublic,
	})
	if err != nil {
		return nil, util.LogError("[FileService] не удалось сохранить папку", err)
	}

	return record, nil
}

// CreateFile : блоб, затем запись; для image ставит задачу на превью.
// Ошибка вставки оставляет блоб без записи, ошибка постановки в очередь только логируется.
func (s *FileService) CreateFile(ctx context.Context, ownerID string, file ports.NewFile) (*model.FileRecord, error) {
	if file.Name == "" {
		return nil, common.Validation("Missing name")
	}
	if _, ok := model.ParseKind(string(file.Kind)); !ok {
		return nil, common.Validation("Missing type")
	}
	if file.Kind == model.KindFolder {
		return s.CreateFolder(ctx, ownerID, file.Name, file.Parent, file.IsPublic)
	}
	if len(file.Data) == 0 {
		return nil, common.Validation("Missing data")
	}

	if err := s.checkParent(ctx, file.Parent); err != nil {
		return nil, err
	}

	contentRef, err := s.blobStore.Put(ctx, file.Data)
	if err != nil {
		return nil, util.LogError("[FileService] не удалось сохранить содержимое", err)
	}

	record, err := s.fileRepository.Insert(ctx, &model.FileRecord{
		OwnerID:    ownerID,
		Name:       file.Name,
		Kind:       file.Kind,
		Parent:     file.Parent,
		IsPublic:   file.IsPublic,
		ContentRef: contentRef,
	})
	if err != nil {
		slog.Error("[FileService] запись не сохранена, блоб остался без владельца",
			"content_ref", contentRef, "owner_id", ownerID, "error", err)
		return nil, util.LogError("[FileService] не удалось сохранить файл", err)
	}

	if record.Kind == model.KindImage {
		job := model.ThumbnailJob{UserID: ownerID, FileID: record.ID}
		if err := s.queue.Enqueue(ctx, job); err != nil {
			slog.Error("[FileService] задача на превью не поставлена",
				"file_id", record.ID, "owner_id", ownerID, "error", err)
		}
	}

	return record, nil
}

// checkParent : родитель должен существовать и быть папкой, владелец родителя не проверяется
func (s *FileService) checkParent(ctx context.Context, parent model.ParentRef) error {
	folderID, ok := parent.FolderID()
	if !ok {
		return nil
	}

	record, err := s.fileRepository.FindByID(ctx, folderID)
	if errors.Is(err, common.ErrNotFound) {
		return common.InvalidParent("Parent not found")
	}
	if err != nil {
		return util.LogError("[FileService] ошибка поиска родителя", err)
	}

	if record.Kind != model.KindFolder {
		return common.InvalidParent("Parent is not a folder")
	}
	return nil
}

func (s *FileService) Get(ctx context.Context, ownerID, fileID string) (*model.FileRecord, error) {
	record, err := s.fileRepository.FindOwned(ctx, fileID, ownerID)
	if err != nil {
		return nil, s.lookupError(err)
	}
	return record, nil
}

// List : страница из model.PageSize записей, отрицательная страница считается нулевой
func (s *FileService) List(ctx context.Context, ownerID string, parent model.ParentRef, page int) ([]model.FileRecord, error) {
	if page < 0 {
		page = 0
	}

	records, err := s.fileRepository.List(ctx, ownerID, parent, page*model.PageSize, model.PageSize)
	if err != nil {
		return nil, util.LogError("[FileService] не удалось получить список файлов", err)
	}
	return records, nil
}

func (s *FileService) SetVisibility(ctx context.Context, ownerID, fileID string, isPublic bool) (*model.FileRecord, error) {
	record, err := s.fileRepository.SetPublic(ctx, fileID, ownerID, isPublic)
	if err != nil {
		return nil, s.lookupError(err)
	}
	return record, nil
}

// FetchContent : приватный файл виден только владельцу, остальным NotFound.
// Проверки идут в порядке: видимость, папка, размер, наличие блоба.
func (s *FileService) FetchContent(ctx context.Context, fileID, size, token string) (*ports.Content, error) {
	record, err := s.fileRepository.FindByID(ctx, fileID)
	if err != nil {
		return nil, s.lookupError(err)
	}

	if !record.IsPublic {
		if err := s.checkOwner(ctx, record, token); err != nil {
			return nil, err
		}
	}

	if !record.Kind.HasContent() {
		return nil, common.ErrNotAFile
	}

	contentRef := record.ContentRef
	if size != "" {
		width, err := strconv.Atoi(size)
		if err != nil || !model.IsThumbnailWidth(width) {
			return nil, common.Validation("Invalid size")
		}
		contentRef = s.blobStore.VariantRef(contentRef, width)
	}

	data, err := s.blobStore.Get(ctx, contentRef)
	if err != nil {
		return nil, s.lookupError(err)
	}

	return &ports.Content{Data: data, MimeType: mimeType(record.Name)}, nil
}

func (s *FileService) checkOwner(ctx context.Context, record *model.FileRecord, token string) error {
	if token == "" {
		return common.ErrNotFound
	}

	userID, ok, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return util.LogError("[FileService] ошибка проверки токена", err)
	}
	if !ok || userID != record.OwnerID {
		return common.ErrNotFound
	}
	return nil
}

func (s *FileService) lookupError(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrNotFound
	}
	return util.LogError("[FileService] ошибка хранилища", err)
}

func mimeType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return defaultMimeType
}

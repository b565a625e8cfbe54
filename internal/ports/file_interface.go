package ports

import (
	"context"

	"files-manager/internal/model"
)

// FileRepository : метаданные каталога. Некорректный или несуществующий id даёт common.ErrNotFound.
type FileRepository interface {
	Insert(ctx context.Context, record *model.FileRecord) (*model.FileRecord, error)
	FindByID(ctx context.Context, id string) (*model.FileRecord, error)
	FindOwned(ctx context.Context, id, ownerID string) (*model.FileRecord, error)
	List(ctx context.Context, ownerID string, parent model.ParentRef, offset, limit int) ([]model.FileRecord, error)
	SetPublic(ctx context.Context, id, ownerID string, isPublic bool) (*model.FileRecord, error)
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// NewFile : входные данные для создания папки или файла
type NewFile struct {
	Name     string
	Kind     model.Kind
	Parent   model.ParentRef
	IsPublic bool
	Data     []byte
}

// Content : содержимое файла вместе с его mime-типом
type Content struct {
	Data     []byte
	MimeType string
}

type FileService interface {
	CreateFolder(ctx context.Context, ownerID, name string, parent model.ParentRef, isPublic bool) (*model.FileRecord, error)
	CreateFile(ctx context.Context, ownerID string, file NewFile) (*model.FileRecord, error)
	Get(ctx context.Context, ownerID, fileID string) (*model.FileRecord, error)
	List(ctx context.Context, ownerID string, parent model.ParentRef, page int) ([]model.FileRecord, error)
	SetVisibility(ctx context.Context, ownerID, fileID string, isPublic bool) (*model.FileRecord, error)
	// FetchContent : пустой size означает оригинал, пустой token анонимный запрос
	FetchContent(ctx context.Context, fileID, size, token string) (*Content, error)
}

type ThumbnailService interface {
	Process(ctx context.Context, job model.ThumbnailJob) error
}

// Status : состояние хранилищ и счётчики для /status и /stats
type Status struct {
	Redis bool
	DB    bool
}

type Stats struct {
	Users int64
	Files int64
}

type StatusService interface {
	Status(ctx context.Context) Status
	Stats(ctx context.Context) (Stats, error)
}

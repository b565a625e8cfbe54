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

const fileColumns = `id, owner_id, name, kind, parent_id, is_public, COALESCE(content_ref, '') AS content_ref, created_at`

// FileRepository : каталог в postgres. Порядок создания хранит столбец seq.
type FileRepository struct {
	*config.Database
}

func NewFileRepository(database *config.Database) *FileRepository {
	return &FileRepository{database}
}

// Insert : сохраняет запись, id генерируется, если не задан
func (r *FileRepository) Insert(ctx context.Context, record *model.FileRecord) (*model.FileRecord, error) {
	query := `
		INSERT INTO files (id, owner_id, name, kind, parent_id, is_public, content_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + fileColumns

	id := record.ID
	if id == "" {
		id = uuid.NewString()
	}

	created := &model.FileRecord{}
	err := r.QueryRowxContext(ctx, query,
		id,
		record.OwnerID,
		record.Name,
		string(record.Kind),
		record.Parent,
		record.IsPublic,
		nullable(record.ContentRef),
	).StructScan(created)
	if err != nil {
		return nil, util.LogError("[FileRepo] ошибка вставки записи в БД", err)
	}

	return created, nil
}

// FindByID : запись по id без проверки владельца
func (r *FileRepository) FindByID(ctx context.Context, id string) (*model.FileRecord, error) {
	if !validUUID(id) {
		return nil, common.ErrNotFound
	}

	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// FindOwned : запись по id, только если она принадлежит ownerID
func (r *FileRepository) FindOwned(ctx context.Context, id, ownerID string) (*model.FileRecord, error) {
	if !validUUID(id) || !validUUID(ownerID) {
		return nil, common.ErrNotFound
	}

	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND owner_id = $2`
	return r.findOne(ctx, query, id, ownerID)
}

// List : записи владельца с точно заданным родителем, новые первыми
func (r *FileRepository) List(ctx context.Context, ownerID string, parent model.ParentRef, offset, limit int) ([]model.FileRecord, error) {
	if !validUUID(ownerID) {
		return []model.FileRecord{}, nil
	}

	var (
		query string
		args  []interface{}
	)

	if folderID, ok := parent.FolderID(); ok {
		if !validUUID(folderID) {
			return []model.FileRecord{}, nil
		}
		query = `SELECT ` + fileColumns + ` FROM files
			WHERE owner_id = $1 AND parent_id = $2
			ORDER BY seq DESC
			LIMIT $3 OFFSET $4`
		args = []interface{}{ownerID, folderID, limit, offset}
	} else {
		query = `SELECT ` + fileColumns + ` FROM files
			WHERE owner_id = $1 AND parent_id IS NULL
			ORDER BY seq DESC
			LIMIT $2 OFFSET $3`
		args = []interface{}{ownerID, limit, offset}
	}

	records := []model.FileRecord{}
	if err := sqlx.SelectContext(ctx, r, &records, query, args...); err != nil {
		return nil, util.LogError("[FileRepo] не удалось получить список файлов", err)
	}

	return records, nil
}

// SetPublic : меняет только is_public и возвращает обновлённую запись
func (r *FileRepository) SetPublic(ctx context.Context, id, ownerID string, isPublic bool) (*model.FileRecord, error) {
	if !validUUID(id) || !validUUID(ownerID) {
		return nil, common.ErrNotFound
	}

	query := `UPDATE files SET is_public = $3 WHERE id = $1 AND owner_id = $2 RETURNING ` + fileColumns
	return r.findOne(ctx, query, id, ownerID, isPublic)
}

func (r *FileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, r, &count, `SELECT COUNT(*) FROM files`); err != nil {
		return 0, util.LogError("[FileRepo] не удалось посчитать файлы", err)
	}
	return count, nil
}

func (r *FileRepository) Ping(ctx context.Context) error {
	return r.PingContext(ctx)
}

func (r *FileRepository) findOne(ctx context.Context, query string, args ...interface{}) (*model.FileRecord, error) {
	var record model.FileRecord
	err := sqlx.GetContext(ctx, r, &record, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[FileRepo] ошибка чтения записи из БД", err)
	}
	return &record, nil
}

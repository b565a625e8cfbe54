package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"files-manager/config"
	"files-manager/internal/common"
	"files-manager/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID  = "0b6c5c5e-3f3b-4a56-9d7c-5d7a3c2f1a01"
	fileID   = "1c7d6d6f-4a4c-4b67-8e8d-6e8b4d3a2b02"
	folderID = "2d8e7e70-5b5d-4c78-9f9e-7f9c5e4b3c03"
)

var fileRowColumns = []string{"id", "owner_id", "name", "kind", "parent_id", "is_public", "content_ref", "created_at"}

func newMockDatabase(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &config.Database{DB: sqlx.NewDb(db, "postgres")}, mock
}

func TestUserRepository_Create(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "успех"},
		{name: "занятый email", dbErr: &pq.Error{Code: "23505"}, wantErr: common.ErrAlreadyExists},
		{name: "ошибка БД", dbErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, mock := newMockDatabase(t)
			repo := NewUserRepository(database)

			expect := mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+users\s*\(id,\s*email,\s*password_hash\)`).
				WithArgs(ownerID, "bob@dylan.com", "hash")
			if tt.dbErr != nil {
				expect.WillReturnError(tt.dbErr)
			} else {
				expect.WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
					AddRow(ownerID, "bob@dylan.com", "hash", now))
			}

			user, err := repo.Create(context.Background(), &model.User{ID: ownerID, Email: "bob@dylan.com", PasswordHash: "hash"})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.dbErr != nil:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, ownerID, user.ID)
				assert.Equal(t, "bob@dylan.com", user.Email)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	t.Run("некорректный id не ходит в БД", func(t *testing.T) {
		database, mock := newMockDatabase(t)
		repo := NewUserRepository(database)

		_, err := repo.FindByID(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, common.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("нет строк", func(t *testing.T) {
		database, mock := newMockDatabase(t)
		repo := NewUserRepository(database)

		mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE id = \$1`).
			WithArgs(ownerID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(context.Background(), ownerID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("найден", func(t *testing.T) {
		database, mock := newMockDatabase(t)
		repo := NewUserRepository(database)

		mock.ExpectQuery(`FROM users WHERE id = \$1`).
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow(ownerID, "bob@dylan.com", "hash", time.Now()))

		user, err := repo.FindByID(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Equal(t, "bob@dylan.com", user.Email)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewUserRepository(database)

	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFileRepository_InsertFolderStoresNullParentAndContent(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewFileRepository(database)

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+files`).
		WithArgs(sqlmock.AnyArg(), ownerID, "Photos", "folder", nil, false, nil).
		WillReturnRows(sqlmock.NewRows(fileRowColumns).
			AddRow(folderID, ownerID, "Photos", "folder", nil, false, "", time.Now()))

	created, err := repo.Insert(context.Background(), &model.FileRecord{
		OwnerID: ownerID,
		Name:    "Photos",
		Kind:    model.KindFolder,
		Parent:  model.RootParent(),
	})
	require.NoError(t, err)

	assert.Equal(t, folderID, created.ID)
	assert.True(t, created.Parent.IsRoot())
	assert.Empty(t, created.ContentRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_InsertFileUnderFolder(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewFileRepository(database)

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+files`).
		WithArgs(fileID, ownerID, "cat.png", "image", folderID, true, "/tmp/files_manager/blob").
		WillReturnRows(sqlmock.NewRows(fileRowColumns).
			AddRow(fileID, ownerID, "cat.png", "image", []byte(folderID), true, "/tmp/files_manager/blob", time.Now()))

	created, err := repo.Insert(context.Background(), &model.FileRecord{
		ID:         fileID,
		OwnerID:    ownerID,
		Name:       "cat.png",
		Kind:       model.KindImage,
		Parent:     model.FolderParent(folderID),
		IsPublic:   true,
		ContentRef: "/tmp/files_manager/blob",
	})
	require.NoError(t, err)

	parent, ok := created.Parent.FolderID()
	require.True(t, ok)
	assert.Equal(t, folderID, parent)
	assert.Equal(t, model.KindImage, created.Kind)
	assert.Equal(t, "/tmp/files_manager/blob", created.ContentRef)
}

func TestFileRepository_FindOwned(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:    "некорректный id",
			id:      "123",
			setup:   func(sqlmock.Sqlmock) {},
			wantErr: common.ErrNotFound,
		},
		{
			name: "чужой или отсутствующий",
			id:   fileID,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE id = \$1 AND owner_id = \$2`).
					WithArgs(fileID, ownerID).
					WillReturnRows(sqlmock.NewRows(fileRowColumns))
			},
			wantErr: common.ErrNotFound,
		},
		{
			name: "найден",
			id:   fileID,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE id = \$1 AND owner_id = \$2`).
					WithArgs(fileID, ownerID).
					WillReturnRows(sqlmock.NewRows(fileRowColumns).
						AddRow(fileID, ownerID, "a.txt", "file", nil, false, "ref", time.Now()))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, mock := newMockDatabase(t)
			repo := NewFileRepository(database)
			tt.setup(mock)

			record, err := repo.FindOwned(context.Background(), tt.id, ownerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "a.txt", record.Name)
				assert.True(t, record.Parent.IsRoot())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFileRepository_ListRootUsesNullParent(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewFileRepository(database)

	mock.ExpectQuery(`(?s)WHERE owner_id = \$1 AND parent_id IS NULL\s+ORDER BY seq DESC\s+LIMIT \$2 OFFSET \$3`).
		WithArgs(ownerID, 20, 40).
		WillReturnRows(sqlmock.NewRows(fileRowColumns).
			AddRow(fileID, ownerID, "b.txt", "file", nil, false, "ref-b", time.Now()).
			AddRow(folderID, ownerID, "Photos", "folder", nil, false, "", time.Now()))

	records, err := repo.List(context.Background(), ownerID, model.RootParent(), 40, 20)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b.txt", records[0].Name)
	assert.Equal(t, "Photos", records[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_ListFolder(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewFileRepository(database)

	mock.ExpectQuery(`WHERE owner_id = \$1 AND parent_id = \$2`).
		WithArgs(ownerID, folderID, 20, 0).
		WillReturnRows(sqlmock.NewRows(fileRowColumns))

	records, err := repo.List(context.Background(), ownerID, model.FolderParent(folderID), 0, 20)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestFileRepository_ListMalformedParentIsEmpty(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewFileRepository(database)

	records, err := repo.List(context.Background(), ownerID, model.FolderParent("xyz"), 0, 20)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_SetPublic(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewFileRepository(database)

	mock.ExpectQuery(`UPDATE files SET is_public = \$3 WHERE id = \$1 AND owner_id = \$2 RETURNING`).
		WithArgs(fileID, ownerID, true).
		WillReturnRows(sqlmock.NewRows(fileRowColumns).
			AddRow(fileID, ownerID, "a.txt", "file", nil, true, "ref", time.Now()))

	record, err := repo.SetPublic(context.Background(), fileID, ownerID, true)
	require.NoError(t, err)
	assert.True(t, record.IsPublic)
	assert.Equal(t, ownerID, record.OwnerID)
}

func TestFileRepository_SetPublicNotOwned(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewFileRepository(database)

	mock.ExpectQuery(`UPDATE files SET is_public`).
		WithArgs(fileID, ownerID, false).
		WillReturnRows(sqlmock.NewRows(fileRowColumns))

	_, err := repo.SetPublic(context.Background(), fileID, ownerID, false)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRepositories_Count(t *testing.T) {
	database, mock := newMockDatabase(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM files`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	users, err := NewUserRepository(database).Count(context.Background())
	require.NoError(t, err)
	files, err := NewFileRepository(database).Count(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(7), files)
}

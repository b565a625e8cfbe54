package handler_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"files-manager/internal/common"
	"files-manager/internal/model"

	"github.com/google/uuid"
)

// memoryUsers : UserRepository в памяти
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]model.User{}}
}

func (m *memoryUsers) Create(_ context.Context, user *model.User) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, common.ErrAlreadyExists
		}
	}
	created := *user
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	m.users[created.ID] = created
	return &created, nil
}

func (m *memoryUsers) FindByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memoryUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

// memoryFiles : FileRepository в памяти, порядок вставки хранится в срезе
type memoryFiles struct {
	mu      sync.Mutex
	records []model.FileRecord
}

func (m *memoryFiles) Insert(_ context.Context, record *model.FileRecord) (*model.FileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *record
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	m.records = append(m.records, created)
	return &created, nil
}

func (m *memoryFiles) FindByID(_ context.Context, id string) (*model.FileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memoryFiles) FindOwned(ctx context.Context, id, ownerID string) (*model.FileRecord, error) {
	r, err := m.FindByID(ctx, id)
	if err != nil || r.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	return r, nil
}

func (m *memoryFiles) List(_ context.Context, ownerID string, parent model.ParentRef, offset, limit int) ([]model.FileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []model.FileRecord{}
	for i := len(m.records) - 1; i >= 0; i-- {
		r := m.records[i]
		if r.OwnerID == ownerID && r.Parent == parent {
			matched = append(matched, r)
		}
	}

	if offset >= len(matched) {
		return []model.FileRecord{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (m *memoryFiles) SetPublic(_ context.Context, id, ownerID string, isPublic bool) (*model.FileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].ID == id && m.records[i].OwnerID == ownerID {
			m.records[i].IsPublic = isPublic
			r := m.records[i]
			return &r, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memoryFiles) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.records)), nil
}

func (m *memoryFiles) Ping(context.Context) error { return nil }

// failingInsertFiles : каталог, который не может сохранить запись
type failingInsertFiles struct {
	*memoryFiles
}

func (f failingInsertFiles) Insert(context.Context, *model.FileRecord) (*model.FileRecord, error) {
	return nil, errInsert
}

var errInsert = errors.New("insert failed")

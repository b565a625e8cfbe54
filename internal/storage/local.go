package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"files-manager/internal/common"
	"files-manager/internal/util"

	"github.com/google/uuid"
)

// LocalStore : блобы в каталоге на диске, ссылка это полный путь к файлу
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("[LocalStore] не удалось создать каталог %s: %w", root, err)
	}
	return &LocalStore{root: root}, nil
}

// Put : пишет байты по новому пути, существующие файлы не перезаписываются
func (s *LocalStore) Put(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ref := filepath.Join(s.root, uuid.NewString())
	if err := writeFile(ref, data); err != nil {
		return "", util.LogError("[LocalStore] ошибка записи файла", err)
	}
	return ref, nil
}

func (s *LocalStore) Get(ctx context.Context, contentRef string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(contentRef)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[LocalStore] ошибка чтения файла", err)
	}
	return data, nil
}

func (s *LocalStore) VariantRef(contentRef string, width int) string {
	return variantRef(contentRef, width)
}

// PutVariant : повторная запись того же превью безопасна
func (s *LocalStore) PutVariant(ctx context.Context, contentRef string, width int, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeFile(variantRef(contentRef, width), data); err != nil {
		return util.LogError("[LocalStore] ошибка записи превью", err)
	}
	return nil
}

// writeFile : запись через временный файл и rename, читатель не увидит половину файла
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

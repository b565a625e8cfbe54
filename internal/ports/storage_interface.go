package ports

import "context"

// BlobStore : содержимое файлов по непрозрачной ссылке.
// Get для отсутствующего блоба возвращает common.ErrNotFound.
type BlobStore interface {
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, contentRef string) ([]byte, error)
	VariantRef(contentRef string, width int) string
	PutVariant(ctx context.Context, contentRef string, width int, data []byte) error
}

package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Kind : тип записи каталога
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindImage  Kind = "image"
)

// ParseKind : возвращает Kind для строки из запроса, ok=false для неизвестного типа
func ParseKind(value string) (Kind, bool) {
	switch Kind(value) {
	case KindFolder, KindFile, KindImage:
		return Kind(value), true
	default:
		return "", false
	}
}

// HasContent : у папки нет содержимого, у file и image есть
func (k Kind) HasContent() bool {
	return k == KindFile || k == KindImage
}

// ParentRef : ссылка на родителя, либо Root, либо id папки.
// Нулевое значение ParentRef это Root.
type ParentRef struct {
	folderID string
}

func RootParent() ParentRef {
	return ParentRef{}
}

func FolderParent(id string) ParentRef {
	return ParentRef{folderID: id}
}

func (p ParentRef) IsRoot() bool {
	return p.folderID == ""
}

// FolderID : id родительской папки, ok=false для Root
func (p ParentRef) FolderID() (string, bool) {
	return p.folderID, p.folderID != ""
}

func (p ParentRef) String() string {
	if p.IsRoot() {
		return "root"
	}
	return p.folderID
}

// MarshalJSON : Root отдаётся как 0, папка как строковый id
func (p ParentRef) MarshalJSON() ([]byte, error) {
	if p.IsRoot() {
		return []byte("0"), nil
	}
	return json.Marshal(p.folderID)
}

// UnmarshalJSON : принимает 0, "0", "" и null как Root, любую другую строку как id папки
func (p *ParentRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "0", `"0"`, `""`:
		*p = RootParent()
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("parentId должен быть 0 или строкой: %w", err)
	}
	*p = FolderParent(id)
	return nil
}

// Value : Root хранится в SQL как NULL
func (p ParentRef) Value() (driver.Value, error) {
	if p.IsRoot() {
		return nil, nil
	}
	return p.folderID, nil
}

func (p *ParentRef) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = RootParent()
	case string:
		*p = FolderParent(v)
	case []byte:
		*p = FolderParent(string(v))
	default:
		return fmt.Errorf("неподдерживаемый тип parent_id: %T", src)
	}
	return nil
}

// FileRecord : метаданные папки или файла
type FileRecord struct {
	ID         string    `db:"id" json:"id"`
	OwnerID    string    `db:"owner_id" json:"userId"`
	Name       string    `db:"name" json:"name"`
	Kind       Kind      `db:"kind" json:"type"`
	Parent     ParentRef `db:"parent_id" json:"parentId"`
	IsPublic   bool      `db:"is_public" json:"isPublic"`
	ContentRef string    `db:"content_ref" json:"-"`
	CreatedAt  time.Time `db:"created_at" json:"-"`
}

// PageSize : фиксированный размер страницы при выдаче списка файлов
const PageSize = 20

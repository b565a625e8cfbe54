package requestresponse

import (
	"encoding/base64"

	"files-manager/internal/model"
)

// CreateFileRequest : тело POST /files, других полей быть не должно.
// parentId принимает 0, "0" или id папки.
type CreateFileRequest struct {
	Name     string          `json:"name" example:"cat.png"`
	Type     string          `json:"type" example:"image" enums:"folder,file,image"`
	ParentID model.ParentRef `json:"parentId" swaggertype:"string" example:"0"`
	IsPublic bool            `json:"isPublic" example:"false"`
	Data     string          `json:"data" example:"SGVsbG8gV2Vic3RhY2shCg=="`
}

// DecodeData : содержимое файла из base64
func (r CreateFileRequest) DecodeData() ([]byte, error) {
	if r.Data == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(r.Data)
}

// StatusResponse : ответ GET /status
type StatusResponse struct {
	Redis bool `json:"redis" example:"true"`
	DB    bool `json:"db" example:"true"`
}

// StatsResponse : ответ GET /stats
type StatsResponse struct {
	Users int64 `json:"users" example:"4"`
	Files int64 `json:"files" example:"30"`
}

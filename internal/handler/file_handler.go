package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"files-manager/internal/model"
	"files-manager/internal/model/requestresponse"
	"files-manager/internal/ports"
	"files-manager/internal/security"
	"files-manager/internal/util"

	"github.com/go-chi/chi/v5"
)

type FileHandler struct {
	ports.FileService
	maxBodyBytes int64
}

func NewFileHandler(fileService ports.FileService, maxBodyBytes int64) *FileHandler {
	return &FileHandler{fileService, maxBodyBytes}
}

// PostUpload godoc
// @Summary Создание папки или загрузка файла
// @Description data передаётся в base64 и обязательна для file и image. Для image ставится задача на превью.
// @Tags Files
// @Accept json
// @Produce json
// @Param X-Token header string true "Токен сессии"
// @Param body body requestresponse.CreateFileRequest true "Тело запроса"
// @Success 201 {object} model.FileRecord
// @Failure 400 {object} requestresponse.ErrorResponse "Missing name / Missing type / Missing data / Parent not found / Parent is not a folder"
// @Failure 401 {object} requestresponse.ErrorResponse "Unauthorized"
// @Router /files [post]
func (h *FileHandler) PostUpload(w http.ResponseWriter, r *http.Request) {
	identity, err := security.IdentityFromContext(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var req requestresponse.CreateFileRequest
	if err := decodeJSON(r, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			util.HandleError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		util.HandleError(w, invalidBody, http.StatusBadRequest)
		return
	}

	data, err := req.DecodeData()
	if err != nil {
		util.HandleError(w, "Invalid data", http.StatusBadRequest)
		return
	}

	record, err := h.FileService.CreateFile(r.Context(), identity.UserID, ports.NewFile{
		Name:     req.Name,
		Kind:     model.Kind(req.Type),
		Parent:   req.ParentID,
		IsPublic: req.IsPublic,
		Data:     data,
	})
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, record)
}

// GetShow godoc
// @Summary Запись каталога по id
// @Tags Files
// @Produce json
// @Param X-Token header string true "Токен сессии"
// @Param id path string true "id файла"
// @Success 200 {object} model.FileRecord
// @Failure 401 {object} requestresponse.ErrorResponse "Unauthorized"
// @Failure 404 {object} requestresponse.ErrorResponse "Not found"
// @Router /files/{id} [get]
func (h *FileHandler) GetShow(w http.ResponseWriter, r *http.Request) {
	identity, err := security.IdentityFromContext(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	record, err := h.FileService.Get(r.Context(), identity.UserID, chi.URLParam(r, "id"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, record)
}

// GetIndex godoc
// @Summary Список файлов папки
// @Description По 20 записей на страницу, новые первыми. Без parentId выдаётся корень.
// @Tags Files
// @Produce json
// @Param X-Token header string true "Токен сессии"
// @Param parentId query string false "id папки, 0 для корня"
// @Param page query int false "номер страницы с нуля"
// @Success 200 {array} model.FileRecord
// @Failure 401 {object} requestresponse.ErrorResponse "Unauthorized"
// @Router /files [get]
func (h *FileHandler) GetIndex(w http.ResponseWriter, r *http.Request) {
	identity, err := security.IdentityFromContext(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	query := r.URL.Query()

	parent := model.RootParent()
	if parentID := query.Get("parentId"); parentID != "" && parentID != "0" {
		parent = model.FolderParent(parentID)
	}

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 0 {
		page = 0
	}

	records, err := h.FileService.List(r.Context(), identity.UserID, parent, page)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, records)
}

// PutPublish godoc
// @Summary Сделать файл публичным
// @Tags Files
// @Produce json
// @Param X-Token header string true "Токен сессии"
// @Param id path string true "id файла"
// @Success 200 {object} model.FileRecord
// @Failure 401 {object} requestresponse.ErrorResponse "Unauthorized"
// @Failure 404 {object} requestresponse.ErrorResponse "Not found"
// @Router /files/{id}/publish [put]
func (h *FileHandler) PutPublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

// PutUnpublish godoc
// @Summary Сделать файл приватным
// @Tags Files
// @Produce json
// @Param X-Token header string true "Токен сессии"
// @Param id path string true "id файла"
// @Success 200 {object} model.FileRecord
// @Failure 401 {object} requestresponse.ErrorResponse "Unauthorized"
// @Failure 404 {object} requestresponse.ErrorResponse "Not found"
// @Router /files/{id}/unpublish [put]
func (h *FileHandler) PutUnpublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *FileHandler) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	identity, err := security.IdentityFromContext(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	record, err := h.FileService.SetVisibility(r.Context(), identity.UserID, chi.URLParam(r, "id"), isPublic)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, record)
}

// GetFile godoc
// @Summary Содержимое файла
// @Description Публичный файл доступен без токена. size выбирает превью 500, 250 или 100.
// @Tags Files
// @Produce octet-stream
// @Param X-Token header string false "Токен сессии"
// @Param id path string true "id файла"
// @Param size query int false "ширина превью" Enums(500, 250, 100)
// @Success 200 {file} binary
// @Failure 400 {object} requestresponse.ErrorResponse "A folder doesn't have content / Invalid size"
// @Failure 404 {object} requestresponse.ErrorResponse "Not found"
// @Router /files/{id}/data [get]
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	content, err := h.FileService.FetchContent(
		r.Context(),
		chi.URLParam(r, "id"),
		r.URL.Query().Get("size"),
		r.Header.Get(security.TokenHeader),
	)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", content.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content.Data); err != nil {
		slog.Warn("[FileHandler] содержимое отправлено не полностью", "path", r.URL.Path, "error", err)
	}
}

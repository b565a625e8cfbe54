package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"files-manager/internal/common"
	"files-manager/internal/util"
)

const invalidBody = "Invalid request body"

// statusCode : вид ошибки приложения в HTTP статус
func statusCode(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrInvalidParent),
		errors.Is(err, common.ErrNotAFile),
		errors.Is(err, common.ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusCode(err)
	if status == http.StatusInternalServerError {
		slog.Error("внутренняя ошибка", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	util.HandleError(w, common.PublicMessage(err), status)
}

// decodeJSON : неизвестные поля и лишние данные после объекта считаются ошибкой.
// Пустое тело не ошибка, дальше сработает проверка обязательных полей.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("лишние данные после JSON объекта")
	}
	return nil
}

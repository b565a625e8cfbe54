package util

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// LogError : пишет ошибку в лог и возвращает её обёрнутой с тем же сообщением
func LogError(message string, err error) error {
	slog.Error(message, "error", err)
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError : ответ об ошибке в виде {"error": "..."}
func HandleError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, statusCode, map[string]string{"error": message})
}

func WriteJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("ошибка записи JSON ответа", "error", err)
	}
}

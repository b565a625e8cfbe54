package handler

import (
	"net/http"

	"files-manager/internal/model/requestresponse"
	"files-manager/internal/ports"
	"files-manager/internal/util"
)

type StatusHandler struct {
	ports.StatusService
}

func NewStatusHandler(statusService ports.StatusService) *StatusHandler {
	return &StatusHandler{statusService}
}

// GetStatus godoc
// @Summary Доступность Redis и БД
// @Tags Status
// @Produce json
// @Success 200 {object} requestresponse.StatusResponse
// @Router /status [get]
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.StatusService.Status(r.Context())
	util.WriteJSON(w, http.StatusOK, requestresponse.StatusResponse{Redis: status.Redis, DB: status.DB})
}

// GetStats godoc
// @Summary Количество пользователей и файлов
// @Tags Status
// @Produce json
// @Success 200 {object} requestresponse.StatsResponse
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /stats [get]
func (h *StatusHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatusService.Stats(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, requestresponse.StatsResponse{Users: stats.Users, Files: stats.Files})
}

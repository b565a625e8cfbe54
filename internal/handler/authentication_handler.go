package handler

import (
	"net/http"

	"files-manager/internal/common"
	"files-manager/internal/model/requestresponse"
	"files-manager/internal/ports"
	"files-manager/internal/security"
	"files-manager/internal/util"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// GetConnect godoc
// @Summary Вход
// @Description Выдаёт токен сессии на 24 часа по Basic авторизации email:password
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Basic base64(email:password)"
// @Success 200 {object} requestresponse.ConnectResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Unauthorized"
// @Router /connect [get]
func (h *AuthenticationHandler) GetConnect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok {
		sendServiceError(w, r, common.ErrUnauthorized)
		return
	}

	token, err := h.AuthenticationService.Connect(r.Context(), email, password)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ConnectResponse{Token: token})
}

// GetDisconnect godoc
// @Summary Выход
// @Description Отзывает токен сессии
// @Tags Authentication
// @Param X-Token header string true "Токен сессии"
// @Success 204
// @Failure 401 {object} requestresponse.ErrorResponse "Unauthorized"
// @Router /disconnect [get]
func (h *AuthenticationHandler) GetDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthenticationService.Disconnect(r.Context(), r.Header.Get(security.TokenHeader)); err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

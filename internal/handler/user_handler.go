package handler

import (
	"net/http"

	"files-manager/internal/model/requestresponse"
	"files-manager/internal/ports"
	"files-manager/internal/security"
	"files-manager/internal/util"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// PostNew godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя по email и паролю. Email должен быть уникальным.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateUserRequest true "Тело запроса"
// @Success 201 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Missing email / Missing password / Already exist"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users [post]
func (h *UserHandler) PostNew(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, invalidBody, http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.NewUserResponse(user))
}

// GetMe godoc
// @Summary Текущий пользователь
// @Tags Users
// @Produce json
// @Param X-Token header string true "Токен сессии"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, err := security.IdentityFromContext(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	user, err := h.UserService.Me(r.Context(), identity.UserID)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.NewUserResponse(user))
}

package requestresponse

import "files-manager/internal/model"

// CreateUserRequest : тело POST /users
type CreateUserRequest struct {
	Email    string `json:"email" example:"bob@dylan.com"`
	Password string `json:"password" example:"toto1234!"`
}

// UserResponse : публичные поля пользователя
type UserResponse struct {
	ID    string `json:"id" example:"5f1e7d35c7ba06511e683b21"`
	Email string `json:"email" example:"bob@dylan.com"`
}

func NewUserResponse(user *model.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email}
}

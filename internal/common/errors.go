// Package common : общие ошибки приложения. Сравнивать через errors.Is.
package common

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrInvalidParent = errors.New("invalid parent")
	ErrNotAFile      = errors.New("not a file")
	ErrAlreadyExists = errors.New("already exists")
	ErrInternal      = errors.New("internal error")
)

// Error : ошибка с видом (одна из ошибок выше) и сообщением для клиента
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error {
	return NewError(ErrValidation, message)
}

func InvalidParent(message string) *Error {
	return NewError(ErrInvalidParent, message)
}

// PublicMessage : сообщение, которое можно отдать клиенту.
// Для внутренних ошибок подробности не раскрываются.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && !errors.Is(appErr.Kind, ErrInternal) {
		return appErr.Message
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrNotAFile):
		return "A folder doesn't have content"
	case errors.Is(err, ErrAlreadyExists):
		return "Already exist"
	default:
		return "Internal Server Error"
	}
}

package requestresponse

// ErrorResponse : любая ошибка API
type ErrorResponse struct {
	Error string `json:"error" example:"Not found"`
}

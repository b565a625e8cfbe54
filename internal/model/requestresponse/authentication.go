package requestresponse

// ConnectResponse : токен сессии, передаётся дальше в заголовке X-Token
type ConnectResponse struct {
	Token string `json:"token" example:"155342df-2399-41da-9e8c-458b6ac52a0c"`
}

package requestresponse

// LoginRequest : тело запроса на вход администратора
type LoginRequest struct {
	Key    string `json:"key" example:"admin-access-key"`
	Secret string `json:"secret" example:"admin-secret-key"`
}

// LoginResponse : ответ на успешный вход
type LoginResponse struct {
	Response LoginData `json:"response"`
}

type LoginData struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	Role      string `json:"role" example:"admin"`
	ExpiresAt string `json:"expires_at" example:"2025-08-23T13:34:56Z"`
}

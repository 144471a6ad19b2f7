package handler

import (
	"movie-catalog/internal/model/requestresponse"
	"movie-catalog/internal/ports"
	"net/http"
	"time"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// Login godoc
// @Summary Вход администратора
// @Description Сравнивает key и secret с ADMIN_ACCESS_KEY и ADMIN_SECRET_KEY и выдаёт токен с ролью admin на один час
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный ключ или секрет"
// @Failure 500 {object} requestresponse.ErrorResponse "Не удалось подписать токен"
// @Router /admin/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	credential, err := h.AuthenticationService.Login(r.Context(), req.Key, req.Secret)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := requestresponse.LoginResponse{}
	resp.Response.Token = credential.Token
	resp.Response.Role = credential.Role
	resp.Response.ExpiresAt = credential.ExpiresAt.Format(time.RFC3339)

	writeJSON(w, http.StatusOK, resp)
}

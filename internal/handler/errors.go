package handler

import (
	"encoding/json"
	"errors"
	"go.uber.org/zap"
	"movie-catalog/internal/model"
	"movie-catalog/internal/util"
	"net/http"
)

const maxBodyBytes = 1 << 20

// writeServiceError : переводит ошибку сервиса в HTTP-ответ.
// Текст внутренних ошибок наружу не отдаётся.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		util.HandleError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrInvalidCredentials):
		util.HandleError(w, model.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
	case errors.Is(err, model.ErrMissingToken):
		util.HandleError(w, model.ErrMissingToken.Error(), http.StatusUnauthorized)
	case errors.Is(err, model.ErrInvalidToken):
		util.HandleError(w, model.ErrInvalidToken.Error(), http.StatusForbidden)
	case errors.Is(err, model.ErrForbidden):
		util.HandleError(w, model.ErrForbidden.Error(), http.StatusForbidden)
	case errors.Is(err, model.ErrNotFound):
		util.HandleError(w, model.ErrNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrConflict):
		util.HandleError(w, model.ErrConflict.Error(), http.StatusConflict)
	default:
		zap.L().Error("[Handler] внутренняя ошибка", zap.Error(err))
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Warn("[Handler] ошибка кодирования ответа", zap.Error(err))
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		util.HandleError(w, "некорректный JSON", http.StatusBadRequest)
		return false
	}
	return true
}

package service

import (
	"context"
	"crypto/subtle"
	"go.uber.org/zap"
	"movie-catalog/config"
	"movie-catalog/internal/model"
	"movie-catalog/internal/ports"
)

type AuthenticationService struct {
	admin               config.AdminConfig
	jwtServiceInterface ports.JWTServiceInterface
}

func NewAuthenticationService(cfg *config.AdminConfig, service ports.JWTServiceInterface) *AuthenticationService {
	return &AuthenticationService{
		admin:               *cfg,
		jwtServiceInterface: service,
	}
}

// Login выдаёт токен администратора.
// Сравнивает пару (key, secret) с ADMIN_ACCESS_KEY и ADMIN_SECRET_KEY за постоянное время.
// Если хотя бы одно эталонное значение не задано, вход невозможен.
//
// Параметры:
//   - ctx: контекст выполнения
//   - key: ключ доступа администратора
//   - secret: секрет администратора
//
// Пример:
//
//	credential, err := handler.AuthenticationService.Login(ctx, "admin-access-key", "admin-secret-key")
//
// Возвращает:
//   - model.AdminCredential с токеном на один час
//   - model.ErrInvalidCredentials при несовпадении (без уточнения, какое поле неверно)
//   - model.ErrSigningKeyMissing, если не задан SECRET_KEY
func (s *AuthenticationService) Login(ctx context.Context, key, secret string) (*model.AdminCredential, error) {
	if s.admin.AccessKey == "" || s.admin.SecretKey == "" {
		zap.L().Warn("[AuthService] ADMIN_ACCESS_KEY или ADMIN_SECRET_KEY не заданы, вход отклонён")
		return nil, model.ErrInvalidCredentials
	}

	keyMatch := subtle.ConstantTimeCompare([]byte(key), []byte(s.admin.AccessKey))
	secretMatch := subtle.ConstantTimeCompare([]byte(secret), []byte(s.admin.SecretKey))
	if keyMatch&secretMatch != 1 {
		return nil, model.ErrInvalidCredentials
	}

	credential, err := s.jwtServiceInterface.GenerateAdminToken(key)
	if err != nil {
		return nil, err
	}

	zap.L().Info("[AuthService] выдан токен администратора", zap.Time("expires_at", credential.ExpiresAt))
	return credential, nil
}

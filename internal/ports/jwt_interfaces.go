package ports

import (
	"movie-catalog/internal/model"
	"movie-catalog/internal/security"
)

type JWTServiceInterface interface {
	GenerateAdminToken(key string) (*model.AdminCredential, error)
	Verify(tokenString string) (*security.Claims, error)
}

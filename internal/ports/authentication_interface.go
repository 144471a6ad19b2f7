package ports

import (
	"context"
	"movie-catalog/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, key, secret string) (*model.AdminCredential, error)
}

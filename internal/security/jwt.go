package security

import (
	"context"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"movie-catalog/config"
	"movie-catalog/internal/model"
	"movie-catalog/internal/util"
	"net/http"
	"strings"
	"time"
)

type contextKey string

const (
	ClaimsContextKey contextKey = "claims"

	AdminTokenTTL = time.Hour
	tokenIssuer   = "movie-catalog"
)

type Claims struct {
	Key  string `json:"key"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier : первая стадия проверки доступа, подлинность токена
type TokenVerifier interface {
	Verify(tokenString string) (*Claims, error)
}

type JWTService struct {
	secretKey []byte
	now       func() time.Time
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secretKey: []byte(cfg.SecretKey),
		now:       time.Now,
	}
}

// GenerateAdminToken : токен с ролью admin, действует AdminTokenTTL.
// Без SECRET_KEY токены не выдаются.
func (service *JWTService) GenerateAdminToken(key string) (*model.AdminCredential, error) {
	if len(service.secretKey) == 0 {
		return nil, model.ErrSigningKeyMissing
	}

	issuedAt := service.now()
	expiresAt := issuedAt.Add(AdminTokenTTL)
	claims := Claims{
		Key:  key,
		Role: model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   key,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    tokenIssuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	token, err := jwtToken.SignedString(service.secretKey)
	if err != nil {
		return nil, util.LogError("[JWTService] ошибка подписи токена", err)
	}

	return &model.AdminCredential{
		Token:     token,
		Role:      model.RoleAdmin,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

// Verify : проверяет подпись (только HS512) и срок действия.
// Любая причина отказа оборачивает model.ErrInvalidToken.
func (service *JWTService) Verify(tokenString string) (*Claims, error) {
	if len(service.secretKey) == 0 {
		return nil, model.ErrSigningKeyMissing
	}
	if tokenString == "" {
		return nil, fmt.Errorf("%w: пустой токен", model.ErrInvalidToken)
	}

	claims := &Claims{}
	jwtToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return service.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !jwtToken.Valid {
		return nil, model.ErrInvalidToken
	}

	return claims, nil
}

// RequireRole : вторая стадия, роль должна совпадать точно
func RequireRole(claims *Claims, role string) error {
	if claims == nil || claims.Role != role {
		return model.ErrForbidden
	}
	return nil
}

// Authenticate : без заголовка Bearer 401, невалидный токен 403, без ключа подписи 500
func Authenticate(verifier TokenVerifier) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := bearerToken(request)
			if !ok {
				util.HandleError(writer, model.ErrMissingToken.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(token)
			switch {
			case errors.Is(err, model.ErrSigningKeyMissing):
				zap.L().Error("[Auth] проверка токена невозможна", zap.Error(err))
				util.HandleError(writer, "внутренняя ошибка сервера", http.StatusInternalServerError)
				return
			case err != nil:
				zap.L().Debug("[Auth] отклонён токен", zap.Error(err))
				util.HandleError(writer, model.ErrInvalidToken.Error(), http.StatusForbidden)
				return
			}

			ctx := context.WithValue(request.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRoleMiddleware : ставится после Authenticate
func RequireRoleMiddleware(role string) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, err := GetClaimsFromContext(request.Context())
			if err != nil {
				util.HandleError(writer, model.ErrMissingToken.Error(), http.StatusUnauthorized)
				return
			}

			if err := RequireRole(claims, role); err != nil {
				zap.L().Debug("[Auth] недостаточно прав", zap.String("key", claims.Key), zap.String("role", claims.Role))
				util.HandleError(writer, err.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, model.ErrMissingToken
	}
	return claims, nil
}

func bearerToken(request *http.Request) (string, bool) {
	authorizationHeader := request.Header.Get("Authorization")
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, "Bearer "))
	return token, token != ""
}

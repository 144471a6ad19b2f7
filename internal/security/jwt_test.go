package security_test

import (
	"movie-catalog/config"
	"movie-catalog/internal/model"
	"movie-catalog/internal/security"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims security.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(role string, expiresIn time.Duration) security.Claims {
	return security.Claims{
		Key:  "someone",
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestGenerateAdminToken(t *testing.T) {
	service := security.NewJWTService(&config.JWTConfig{SecretKey: testSecret})

	before := time.Now()
	credential, err := service.GenerateAdminToken("admin-key")
	require.NoError(t, err)

	assert.NotEmpty(t, credential.Token)
	assert.Equal(t, model.RoleAdmin, credential.Role)
	assert.WithinDuration(t, before.Add(time.Hour), credential.ExpiresAt, 2*time.Second)

	claims, err := service.Verify(credential.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin-key", claims.Key)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.NoError(t, security.RequireRole(claims, model.RoleAdmin))
}

func TestGenerateAdminToken_NoSecret(t *testing.T) {
	service := security.NewJWTService(&config.JWTConfig{})

	credential, err := service.GenerateAdminToken("admin-key")

	assert.Nil(t, credential)
	assert.ErrorIs(t, err, model.ErrSigningKeyMissing)
}

func TestVerify_Rejections(t *testing.T) {
	service := security.NewJWTService(&config.JWTConfig{SecretKey: testSecret})

	tests := []struct {
		name  string
		token string
	}{
		{name: "пустой", token: ""},
		{name: "мусор", token: "not.a.jwt"},
		{name: "истёк", token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), claimsFor(model.RoleAdmin, -time.Minute))},
		{name: "чужой секрет", token: signToken(t, jwt.SigningMethodHS512, []byte("other"), claimsFor(model.RoleAdmin, time.Hour))},
		{name: "другой алгоритм", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(model.RoleAdmin, time.Hour))},
		{name: "без срока действия", token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), security.Claims{Role: model.RoleAdmin})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.Verify(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, model.ErrInvalidToken)
		})
	}
}

func TestVerify_NoSecret(t *testing.T) {
	signed := security.NewJWTService(&config.JWTConfig{SecretKey: testSecret})
	credential, err := signed.GenerateAdminToken("admin-key")
	require.NoError(t, err)

	service := security.NewJWTService(&config.JWTConfig{})
	_, err = service.Verify(credential.Token)

	assert.ErrorIs(t, err, model.ErrSigningKeyMissing)
}

func TestRequireRole(t *testing.T) {
	assert.NoError(t, security.RequireRole(&security.Claims{Role: "admin"}, "admin"))
	assert.ErrorIs(t, security.RequireRole(&security.Claims{Role: "viewer"}, "admin"), model.ErrForbidden)
	assert.ErrorIs(t, security.RequireRole(&security.Claims{Role: "Admin"}, "admin"), model.ErrForbidden)
	assert.ErrorIs(t, security.RequireRole(nil, "admin"), model.ErrForbidden)
}

func protectedHandler(service *security.JWTService) http.Handler {
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := security.GetClaimsFromContext(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.Header().Set("X-Key", claims.Key)
		w.WriteHeader(http.StatusOK)
	})
	return security.Authenticate(service)(security.RequireRoleMiddleware(model.RoleAdmin)(final))
}

func TestAuthenticateMiddleware(t *testing.T) {
	service := security.NewJWTService(&config.JWTConfig{SecretKey: testSecret})
	admin, err := service.GenerateAdminToken("admin-key")
	require.NoError(t, err)
	viewer := signToken(t, jwt.SigningMethodHS512, []byte(testSecret), claimsFor("viewer", time.Hour))

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{name: "нет заголовка", authorization: "", wantStatus: http.StatusUnauthorized},
		{name: "не bearer", authorization: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "пустой bearer", authorization: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "невалидный токен", authorization: "Bearer garbage", wantStatus: http.StatusForbidden},
		{name: "не админ", authorization: "Bearer " + viewer, wantStatus: http.StatusForbidden},
		{name: "админ", authorization: "Bearer " + admin.Token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/movies", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rr := httptest.NewRecorder()

			protectedHandler(service).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "admin-key", rr.Header().Get("X-Key"))
			}
		})
	}
}

func TestAuthenticateMiddleware_NoSecretFailsClosed(t *testing.T) {
	service := security.NewJWTService(&config.JWTConfig{})

	req := httptest.NewRequest(http.MethodDelete, "/movies/1", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rr := httptest.NewRecorder()

	protectedHandler(service).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRequireRoleMiddleware_WithoutAuthenticate(t *testing.T) {
	handler := security.RequireRoleMiddleware(model.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

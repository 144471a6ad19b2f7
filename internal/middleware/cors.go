package middleware

import (
	"github.com/gorilla/handlers"
	"net/http"
)

// CORS : разрешает кросс-доменные запросы только с одного источника (CORS_ORIGIN)
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	headersOk := handlers.AllowedHeaders([]string{
		"Accept",
		"Authorization",
		"Content-Type",
		"Origin",
		"X-Requested-With",
	})
	originsOk := handlers.AllowedOrigins([]string{allowedOrigin})
	methodsOk := handlers.AllowedMethods([]string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodOptions,
	})

	return handlers.CORS(originsOk, headersOk, methodsOk)
}

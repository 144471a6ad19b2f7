package handler

import (
	"github.com/go-chi/chi/v5"
	"movie-catalog/internal/model"
	"movie-catalog/internal/security"
)

// RegisterRoutes : чтение каталога открыто, изменения требуют токен с ролью admin
func RegisterRoutes(r chi.Router, movies *MovieHandler, auth *AuthenticationHandler, verifier security.TokenVerifier) {
	r.Get("/health", HealthCheck)
	r.Post("/admin/login", auth.Login)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movies.ListMovies)
		r.Get("/search", movies.SearchMovies)
		r.Get("/{id}", movies.GetMovie)

		r.Group(func(r chi.Router) {
			r.Use(security.Authenticate(verifier))
			r.Use(security.RequireRoleMiddleware(model.RoleAdmin))

			r.Post("/", movies.CreateMovie)
			r.Put("/{id}", movies.UpdateMovie)
			r.Delete("/{id}", movies.DeleteMovie)
		})
	})
}

package ports

import (
	"context"
	"movie-catalog/internal/model"
)

// MovieRepository : документное хранилище фильмов.
// Отсутствующая запись возвращает model.ErrNotFound, нарушение уникальности (title, genre) возвращает model.ErrConflict.
type MovieRepository interface {
	Find(ctx context.Context, filter model.MovieFilter) ([]model.Movie, error)
	FindByID(ctx context.Context, id string) (*model.Movie, error)
	Create(ctx context.Context, movie *model.NewMovie) (*model.Movie, error)
	UpdateByID(ctx context.Context, id string, update *model.MovieUpdate) (*model.Movie, error)
	DeleteByID(ctx context.Context, id string) error
}

type MovieService interface {
	ListMovies(ctx context.Context) ([]model.Movie, error)
	SearchMovies(ctx context.Context, query string) ([]model.Movie, error)
	GetMovie(ctx context.Context, id string) (*model.Movie, error)
	CreateMovie(ctx context.Context, movie *model.NewMovie) (*model.Movie, error)
	UpdateMovie(ctx context.Context, id string, update *model.MovieUpdate) (*model.Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

package repository

import (
	"context"
	"github.com/google/uuid"
	"movie-catalog/internal/model"
	"strings"
	"sync"
	"time"
)

// MemoryMovieRepository : хранилище фильмов в памяти процесса (локальный запуск и тесты).
// Соблюдает тот же инвариант уникальности (title, genre), что и MongoDB/PostgreSQL.
type MemoryMovieRepository struct {
	mu     sync.RWMutex
	movies []model.Movie
	now    func() time.Time
}

func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{now: time.Now}
}

// Find : порядок выдачи совпадает с порядком вставки
func (r *MemoryMovieRepository) Find(_ context.Context, filter model.MovieFilter) ([]model.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	movies := []model.Movie{}
	for _, movie := range r.movies {
		if movie.DeletedAt != nil {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(movie.Title), query) &&
			!strings.Contains(strings.ToLower(string(movie.Genre)), query) {
			continue
		}
		movies = append(movies, cloneMovie(movie))
	}
	return movies, nil
}

func (r *MemoryMovieRepository) FindByID(_ context.Context, id string) (*model.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, model.ErrNotFound
	}
	movie := cloneMovie(r.movies[idx])
	return &movie, nil
}

func (r *MemoryMovieRepository) Create(_ context.Context, newMovie *model.NewMovie) (*model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflicts("", newMovie.Title, newMovie.Genre) {
		return nil, model.ErrConflict
	}

	now := r.now().UTC()
	link := newMovie.StreamingLink
	movie := model.Movie{
		ID:            uuid.New().String(),
		Title:         newMovie.Title,
		Genre:         newMovie.Genre,
		Rating:        newMovie.Rating,
		StreamingLink: &link,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.movies = append(r.movies, movie)

	created := cloneMovie(movie)
	return &created, nil
}

func (r *MemoryMovieRepository) UpdateByID(_ context.Context, id string, update *model.MovieUpdate) (*model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, model.ErrNotFound
	}

	movie := cloneMovie(r.movies[idx])
	update.Apply(&movie)
	if r.conflicts(id, movie.Title, movie.Genre) {
		return nil, model.ErrConflict
	}
	movie.UpdatedAt = r.now().UTC()
	r.movies[idx] = movie

	updated := cloneMovie(movie)
	return &updated, nil
}

func (r *MemoryMovieRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return model.ErrNotFound
	}
	r.movies = append(r.movies[:idx], r.movies[idx+1:]...)
	return nil
}

func (r *MemoryMovieRepository) indexOf(id string) int {
	for i, movie := range r.movies {
		if movie.ID == id && movie.DeletedAt == nil {
			return i
		}
	}
	return -1
}

func (r *MemoryMovieRepository) conflicts(exceptID, title string, genre model.Genre) bool {
	for _, movie := range r.movies {
		if movie.ID != exceptID && movie.DeletedAt == nil && movie.Title == title && movie.Genre == genre {
			return true
		}
	}
	return false
}

func cloneMovie(movie model.Movie) model.Movie {
	if movie.StreamingLink != nil {
		link := *movie.StreamingLink
		movie.StreamingLink = &link
	}
	if movie.DeletedAt != nil {
		deletedAt := *movie.DeletedAt
		movie.DeletedAt = &deletedAt
	}
	return movie
}

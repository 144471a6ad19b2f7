package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"movie-catalog/config"
	"movie-catalog/internal/model"
	"movie-catalog/internal/ports"
	"movie-catalog/internal/util"
	"reflect"
	"strings"
	"time"
)

const (
	moviesCacheKey    = "movies"
	searchCachePrefix = "search:"
)

// SearchCacheKey : запрос берётся как есть, с учётом регистра
func SearchCacheKey(query string) string {
	return searchCachePrefix + query
}

// MovieService : каталог фильмов с кэшированием по схеме cache-aside.
// Запись в хранилище и инвалидация кэша не атомарны: между ними возможен устаревший ответ из кэша.
type MovieService struct {
	repository ports.MovieRepository
	cache      ports.CacheRepository
	validate   *validator.Validate
	ttl        time.Duration
	// при ошибке кэша чтение идёт напрямую в хранилище, а инвалидация только логируется
	degradeOnCacheError bool
}

func NewMovieService(repository ports.MovieRepository, cache ports.CacheRepository, cfg *config.CacheConfig) *MovieService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	})

	return &MovieService{
		repository:          repository,
		cache:               cache,
		validate:            validate,
		ttl:                 cfg.TTL(),
		degradeOnCacheError: cfg.DegradeOnError,
	}
}

func (s *MovieService) ListMovies(ctx context.Context) ([]model.Movie, error) {
	return s.readThrough(ctx, moviesCacheKey, model.MovieFilter{})
}

func (s *MovieService) SearchMovies(ctx context.Context, query string) ([]model.Movie, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: параметр поиска q обязателен", model.ErrValidation)
	}
	return s.readThrough(ctx, SearchCacheKey(query), model.MovieFilter{Query: query})
}

// GetMovie : чтение одного фильма не кэшируется
func (s *MovieService) GetMovie(ctx context.Context, id string) (*model.Movie, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *MovieService) CreateMovie(ctx context.Context, newMovie *model.NewMovie) (*model.Movie, error) {
	if newMovie == nil {
		return nil, fmt.Errorf("%w: пустое тело запроса", model.ErrValidation)
	}
	if err := s.validate.StructCtx(ctx, newMovie); err != nil {
		return nil, validationError(err)
	}

	movie, err := s.repository.Create(ctx, newMovie)
	if err != nil {
		return nil, err
	}

	if err := s.invalidate(ctx, moviesCacheKey); err != nil {
		return nil, err
	}

	zap.L().Info("[MovieService] фильм создан", zap.String("id", movie.ID), zap.String("title", movie.Title))
	return movie, nil
}

// UpdateMovie : сбрасывает список и поиск только по новому названию.
// Поиски по старому названию и по жанру остаются в кэше до истечения TTL.
// Пустое обновление для несуществующего id отдаёт ErrNotFound, а не ErrValidation.
func (s *MovieService) UpdateMovie(ctx context.Context, id string, update *model.MovieUpdate) (*model.Movie, error) {
	if update == nil || update.Empty() {
		if _, err := s.repository.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: не передано ни одного поля для обновления", model.ErrValidation)
	}
	if err := s.validate.StructCtx(ctx, update); err != nil {
		return nil, validationError(err)
	}

	movie, err := s.repository.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}

	if err := s.invalidate(ctx, moviesCacheKey, SearchCacheKey(movie.Title)); err != nil {
		return nil, err
	}

	zap.L().Info("[MovieService] фильм обновлён", zap.String("id", movie.ID))
	return movie, nil
}

func (s *MovieService) DeleteMovie(ctx context.Context, id string) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return err
	}

	if err := s.invalidate(ctx, moviesCacheKey); err != nil {
		return err
	}

	zap.L().Info("[MovieService] фильм удалён", zap.String("id", id))
	return nil
}

func (s *MovieService) readThrough(ctx context.Context, key string, filter model.MovieFilter) ([]model.Movie, error) {
	var cached []model.Movie
	found, err := s.cache.Get(ctx, key, &cached)
	switch {
	case err != nil && !s.degradeOnCacheError:
		return nil, fmt.Errorf("ошибка чтения кэша %q: %w", key, err)
	case err != nil:
		zap.L().Warn("[MovieService] кэш недоступен, читаем из хранилища", zap.String("key", key), zap.Error(err))
	case found:
		zap.L().Debug("[MovieService] попадание в кэш", zap.String("key", key))
		return cached, nil
	}

	movies, err := s.repository.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, movies, s.ttl); err != nil {
		if !s.degradeOnCacheError {
			return nil, fmt.Errorf("ошибка записи в кэш %q: %w", key, err)
		}
		zap.L().Warn("[MovieService] не удалось заполнить кэш", zap.String("key", key), zap.Error(err))
	}

	return movies, nil
}

// invalidate : в режиме деградации ошибка удаления ключа логируется, запись считается успешной
func (s *MovieService) invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		err := s.cache.Delete(ctx, key)
		if err == nil {
			continue
		}
		if !s.degradeOnCacheError {
			return util.LogError(fmt.Sprintf("[MovieService] не удалось инвалидировать ключ %q", key), err)
		}
		zap.L().Warn("[MovieService] не удалось инвалидировать ключ, кэш может быть устаревшим", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("%w: %s", model.ErrValidation, strings.Join(fields, ", "))
}

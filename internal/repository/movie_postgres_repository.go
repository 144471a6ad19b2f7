package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"movie-catalog/config"
	"movie-catalog/internal/model"
	"movie-catalog/internal/util"
	"strings"
)

const uniqueViolation = "23505"

const movieColumns = `id, title, genre, rating, streaming_link, created_at, updated_at, deleted_at`

type PostgresMovieRepository struct {
	*config.Database
}

func NewPostgresMovieRepository(database *config.Database) *PostgresMovieRepository {
	return &PostgresMovieRepository{database}
}

// EnsureSchema : создаёт таблицу movies и частичный уникальный индекс (title, genre)
func (r *PostgresMovieRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS movies (
			id             UUID PRIMARY KEY,
			title          TEXT NOT NULL,
			genre          TEXT NOT NULL,
			rating         DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (rating >= 0 AND rating <= 10),
			streaming_link TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at     TIMESTAMPTZ
		);
		CREATE UNIQUE INDEX IF NOT EXISTS movies_title_genre_unique
			ON movies (title, genre) WHERE deleted_at IS NULL;
	`
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return util.LogError("[PostgresMovieRepo] не удалось создать схему", err)
	}
	return nil
}

// Find : без запроса отдаёт все неудалённые фильмы, с запросом ищет подстроку (ILIKE) в title или genre
func (r *PostgresMovieRepository) Find(ctx context.Context, filter model.MovieFilter) ([]model.Movie, error) {
	movies := []model.Movie{}
	var err error

	if filter.Query == "" {
		err = sqlx.SelectContext(ctx, r.DB, &movies, `
			SELECT `+movieColumns+`
			FROM movies
			WHERE deleted_at IS NULL
		`)
	} else {
		err = sqlx.SelectContext(ctx, r.DB, &movies, `
			SELECT `+movieColumns+`
			FROM movies
			WHERE deleted_at IS NULL
			  AND (title ILIKE '%' || $1 || '%' OR genre ILIKE '%' || $1 || '%')
		`, escapeLike(filter.Query))
	}
	if err != nil {
		return nil, util.LogError("[PostgresMovieRepo] ошибка поиска фильмов", err)
	}

	return movies, nil
}

func (r *PostgresMovieRepository) FindByID(ctx context.Context, id string) (*model.Movie, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrNotFound
	}

	var movie model.Movie
	err := sqlx.GetContext(ctx, r.DB, &movie, `
		SELECT `+movieColumns+`
		FROM movies
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	} else if err != nil {
		return nil, util.LogError("[PostgresMovieRepo] ошибка получения фильма", err)
	}

	return &movie, nil
}

func (r *PostgresMovieRepository) Create(ctx context.Context, newMovie *model.NewMovie) (*model.Movie, error) {
	query := `
		INSERT INTO movies (id, title, genre, rating, streaming_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + movieColumns

	var movie model.Movie
	err := sqlx.GetContext(ctx, r.DB, &movie, query,
		uuid.New().String(),
		newMovie.Title,
		newMovie.Genre,
		newMovie.Rating,
		newMovie.StreamingLink,
	)
	if isUniqueViolation(err) {
		return nil, model.ErrConflict
	} else if err != nil {
		return nil, util.LogError("[PostgresMovieRepo] не удалось сохранить фильм", err)
	}

	return &movie, nil
}

// UpdateByID : NULL-параметр оставляет колонку без изменений
func (r *PostgresMovieRepository) UpdateByID(ctx context.Context, id string, update *model.MovieUpdate) (*model.Movie, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrNotFound
	}

	query := `
		UPDATE movies
		SET title          = COALESCE($2, title),
		    genre          = COALESCE($3, genre),
		    rating         = COALESCE($4, rating),
		    streaming_link = COALESCE($5, streaming_link),
		    updated_at     = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + movieColumns

	var genre *string
	if update.Genre != nil {
		value := string(*update.Genre)
		genre = &value
	}

	var movie model.Movie
	err := sqlx.GetContext(ctx, r.DB, &movie, query,
		id,
		update.Title,
		genre,
		update.Rating,
		update.StreamingLink,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, model.ErrNotFound
	case isUniqueViolation(err):
		return nil, model.ErrConflict
	case err != nil:
		return nil, util.LogError("[PostgresMovieRepo] не удалось обновить фильм", err)
	}

	return &movie, nil
}

func (r *PostgresMovieRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrNotFound
	}

	result, err := r.DB.ExecContext(ctx, `DELETE FROM movies WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return util.LogError("[PostgresMovieRepo] не удалось удалить фильм", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[PostgresMovieRepo] не удалось проверить, удалён ли фильм", err)
	}
	if rowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike : экранирует спецсимволы LIKE, чтобы запрос искался как подстрока
func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}

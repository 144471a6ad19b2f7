package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"movie-catalog/config"
	"movie-catalog/internal/model"
	"movie-catalog/internal/ports"
	"movie-catalog/internal/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.MovieRepository = (*repository.PostgresMovieRepository)(nil)

const testMovieID = "5b1f4d0c-8f3e-4a43-9d7e-0f6a2b3c4d5e"

var movieRowColumns = []string{"id", "title", "genre", "rating", "streaming_link", "created_at", "updated_at", "deleted_at"}

func newTestPostgresRepo(t *testing.T) (*repository.PostgresMovieRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	database := &config.Database{DB: sqlx.NewDb(db, "postgres")}
	return repository.NewPostgresMovieRepository(database), mock
}

func duneRow(rows *sqlmock.Rows) *sqlmock.Rows {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return rows.AddRow(testMovieID, "Dune", "Sci-Fi", 8.5, "http://example.com/dune", created, created, nil)
}

func TestPostgresMovieRepository_EnsureSchema(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS movies").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMovieRepository_FindAll(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM movies WHERE deleted_at IS NULL").
		WillReturnRows(duneRow(sqlmock.NewRows(movieRowColumns)))

	movies, err := repo.Find(context.Background(), model.MovieFilter{})

	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, testMovieID, movies[0].ID)
	assert.Equal(t, model.GenreSciFi, movies[0].Genre)
	require.NotNil(t, movies[0].StreamingLink)
	assert.Equal(t, "http://example.com/dune", *movies[0].StreamingLink)
	assert.Nil(t, movies[0].DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMovieRepository_FindEmptyIsNotNil(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)

	mock.ExpectQuery("ILIKE").
		WithArgs("zzz").
		WillReturnRows(sqlmock.NewRows(movieRowColumns))

	movies, err := repo.Find(context.Background(), model.MovieFilter{Query: "zzz"})

	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestPostgresMovieRepository_FindEscapesLikePattern(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)

	mock.ExpectQuery("ILIKE").
		WithArgs(`50\%\_off\\`).
		WillReturnRows(sqlmock.NewRows(movieRowColumns))

	_, err := repo.Find(context.Background(), model.MovieFilter{Query: `50%_off\`})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMovieRepository_FindError(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)

	mock.ExpectQuery("FROM movies").WillReturnError(errors.New("connection reset"))

	movies, err := repo.Find(context.Background(), model.MovieFilter{})

	assert.Error(t, err)
	assert.Nil(t, movies)
}

func TestPostgresMovieRepository_FindByID(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)

	mock.ExpectQuery("WHERE id = \\$1 AND deleted_at IS NULL").
		WithArgs(testMovieID).
		WillReturnRows(duneRow(sqlmock.NewRows(movieRowColumns)))

	movie, err := repo.FindByID(context.Background(), testMovieID)

	require.NoError(t, err)
	assert.Equal(t, "Dune", movie.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMovieRepository_FindByIDNotFound(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)

	mock.ExpectQuery("FROM movies").
		WithArgs(testMovieID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), testMovieID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// невалидный id не доходит до БД
	_, err = repo.FindByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMovieRepository_Create(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)

	mock.ExpectQuery("INSERT INTO movies").
		WithArgs(sqlmock.AnyArg(), "Dune", "Sci-Fi", 8.5, "http://example.com/dune").
		WillReturnRows(duneRow(sqlmock.NewRows(movieRowColumns)))

	movie, err := repo.Create(context.Background(), &model.NewMovie{
		Title:         "Dune",
		Genre:         model.GenreSciFi,
		Rating:        8.5,
		StreamingLink: "http://example.com/dune",
	})

	require.NoError(t, err)
	assert.Equal(t, testMovieID, movie.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMovieRepository_CreateConflict(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)

	mock.ExpectQuery("INSERT INTO movies").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &model.NewMovie{
		Title:         "Dune",
		Genre:         model.GenreSciFi,
		Rating:        8.5,
		StreamingLink: "http://example.com/dune",
	})

	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestPostgresMovieRepository_UpdateByID(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)
	title := "Dune: Part Two"

	mock.ExpectQuery("UPDATE movies").
		WithArgs(testMovieID, title, nil, nil, nil).
		WillReturnRows(duneRow(sqlmock.NewRows(movieRowColumns)))

	_, err := repo.UpdateByID(context.Background(), testMovieID, &model.MovieUpdate{Title: &title})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMovieRepository_UpdateByIDErrors(t *testing.T) {
	title := "Dune"

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "не найден", dbErr: sql.ErrNoRows, wantErr: model.ErrNotFound},
		{name: "дубликат", dbErr: &pq.Error{Code: "23505"}, wantErr: model.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostgresRepo(t)
			mock.ExpectQuery("UPDATE movies").WillReturnError(tt.dbErr)

			_, err := repo.UpdateByID(context.Background(), testMovieID, &model.MovieUpdate{Title: &title})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPostgresMovieRepository_DeleteByID(t *testing.T) {
	repo, mock := newTestPostgresRepo(t)

	mock.ExpectExec("DELETE FROM movies").
		WithArgs(testMovieID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM movies").
		WithArgs(testMovieID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByID(context.Background(), testMovieID))
	assert.ErrorIs(t, repo.DeleteByID(context.Background(), testMovieID), model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

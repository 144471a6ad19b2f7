package repository_test

import (
	"context"
	"movie-catalog/internal/model"
	"movie-catalog/internal/ports"
	"movie-catalog/internal/repository"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.MovieRepository = (*repository.MemoryMovieRepository)(nil)

func seedMemoryRepo(t *testing.T, movies ...model.NewMovie) *repository.MemoryMovieRepository {
	t.Helper()
	repo := repository.NewMemoryMovieRepository()
	for i := range movies {
		_, err := repo.Create(context.Background(), &movies[i])
		require.NoError(t, err)
	}
	return repo
}

func TestMemoryMovieRepository_CreateAndFind(t *testing.T) {
	repo := seedMemoryRepo(t,
		model.NewMovie{Title: "Inception", Genre: model.GenreSciFi, Rating: 8.8, StreamingLink: "http://example.com/inception"},
		model.NewMovie{Title: "The Dark Knight", Genre: model.GenreAction, Rating: 9, StreamingLink: "http://example.com/tdk"},
	)

	movies, err := repo.Find(context.Background(), model.MovieFilter{})
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Inception", movies[0].Title)
	assert.NotEmpty(t, movies[0].ID)
	assert.False(t, movies[0].CreatedAt.IsZero())
	assert.Equal(t, movies[0].CreatedAt, movies[0].UpdatedAt)
}

func TestMemoryMovieRepository_Search(t *testing.T) {
	repo := seedMemoryRepo(t,
		model.NewMovie{Title: "Inception", Genre: model.GenreSciFi, Rating: 8.8, StreamingLink: "a"},
		model.NewMovie{Title: "The Dark Knight", Genre: model.GenreAction, Rating: 9, StreamingLink: "b"},
		model.NewMovie{Title: "Interstellar", Genre: model.GenreSciFi, Rating: 8.6, StreamingLink: "c"},
	)

	tests := []struct {
		query string
		want  []string
	}{
		{query: "dark", want: []string{"The Dark Knight"}},
		{query: "SCI", want: []string{"Inception", "Interstellar"}},
		{query: "t", want: []string{"Inception", "The Dark Knight", "Interstellar"}},
		{query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			movies, err := repo.Find(context.Background(), model.MovieFilter{Query: tt.query})
			require.NoError(t, err)
			require.NotNil(t, movies)

			titles := make([]string, 0, len(movies))
			for _, movie := range movies {
				titles = append(titles, movie.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestMemoryMovieRepository_Uniqueness(t *testing.T) {
	repo := seedMemoryRepo(t,
		model.NewMovie{Title: "Dune", Genre: model.GenreSciFi, Rating: 8, StreamingLink: "a"},
	)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.NewMovie{Title: "Dune", Genre: model.GenreSciFi, Rating: 7, StreamingLink: "b"})
	assert.ErrorIs(t, err, model.ErrConflict)

	// тот же заголовок в другом жанре допустим
	other, err := repo.Create(ctx, &model.NewMovie{Title: "Dune", Genre: model.GenreDrama, Rating: 7, StreamingLink: "b"})
	require.NoError(t, err)

	genre := model.GenreSciFi
	_, err = repo.UpdateByID(ctx, other.ID, &model.MovieUpdate{Genre: &genre})
	assert.ErrorIs(t, err, model.ErrConflict)

	unchanged, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GenreDrama, unchanged.Genre)
}

func TestMemoryMovieRepository_UpdateByID(t *testing.T) {
	repo := seedMemoryRepo(t,
		model.NewMovie{Title: "Dune", Genre: model.GenreSciFi, Rating: 8, StreamingLink: "a"},
	)
	ctx := context.Background()
	movies, _ := repo.Find(ctx, model.MovieFilter{})
	id := movies[0].ID

	rating := 9.1
	updated, err := repo.UpdateByID(ctx, id, &model.MovieUpdate{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 9.1, updated.Rating)
	assert.Equal(t, "Dune", updated.Title)

	_, err = repo.UpdateByID(ctx, "missing", &model.MovieUpdate{Rating: &rating})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMemoryMovieRepository_DeleteByID(t *testing.T) {
	repo := seedMemoryRepo(t,
		model.NewMovie{Title: "Dune", Genre: model.GenreSciFi, Rating: 8, StreamingLink: "a"},
	)
	ctx := context.Background()
	movies, _ := repo.Find(ctx, model.MovieFilter{})
	id := movies[0].ID

	require.NoError(t, repo.DeleteByID(ctx, id))
	assert.ErrorIs(t, repo.DeleteByID(ctx, id), model.ErrNotFound)

	_, err := repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// после удаления пару (title, genre) можно использовать снова
	_, err = repo.Create(ctx, &model.NewMovie{Title: "Dune", Genre: model.GenreSciFi, Rating: 8, StreamingLink: "a"})
	assert.NoError(t, err)
}

func TestMemoryMovieRepository_ReturnsCopies(t *testing.T) {
	repo := seedMemoryRepo(t,
		model.NewMovie{Title: "Dune", Genre: model.GenreSciFi, Rating: 8, StreamingLink: "a"},
	)
	ctx := context.Background()

	movies, _ := repo.Find(ctx, model.MovieFilter{})
	movies[0].Title = "Changed"
	*movies[0].StreamingLink = "changed"

	fresh, err := repo.FindByID(ctx, movies[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", fresh.Title)
	assert.Equal(t, "a", *fresh.StreamingLink)
}

func TestMemoryMovieRepository_ConcurrentCreate(t *testing.T) {
	repo := repository.NewMemoryMovieRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, &model.NewMovie{Title: "Dune", Genre: model.GenreSciFi, Rating: 8, StreamingLink: "a"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var created, conflicts int
	for err := range errs {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, model.ErrConflict)
			conflicts++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 9, conflicts)
}

package model

import "time"

type Genre string

const (
	GenreAction  Genre = "Action"
	GenreComedy  Genre = "Comedy"
	GenreDrama   Genre = "Drama"
	GenreHorror  Genre = "Horror"
	GenreSciFi   Genre = "Sci-Fi"
	GenreRomance Genre = "Romance"
)

// Genres : допустимые жанры в порядке объявления
var Genres = []Genre{GenreAction, GenreComedy, GenreDrama, GenreHorror, GenreSciFi, GenreRomance}

func (g Genre) Valid() bool {
	for _, genre := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Movie : запись каталога. Пара (Title, Genre) уникальна среди неудалённых фильмов
type Movie struct {
	ID            string     `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Genre         Genre      `db:"genre" json:"genre"`
	Rating        float64    `db:"rating" json:"rating"`
	StreamingLink *string    `db:"streaming_link" json:"streamingLink"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt     *time.Time `db:"deleted_at" json:"deletedAt"`
}

// NewMovie : поля для создания фильма, все обязательны.
// Нулевой рейтинг считается отсутствующим полем.
type NewMovie struct {
	Title         string  `json:"title" validate:"required" example:"Dune"`
	Genre         Genre   `json:"genre" validate:"required,oneof=Action Comedy Drama Horror Sci-Fi Romance" example:"Sci-Fi"`
	Rating        float64 `json:"rating" validate:"required,gte=0,lte=10" example:"8.5"`
	StreamingLink string  `json:"streamingLink" validate:"required" example:"http://example.com/dune"`
}

// MovieUpdate : частичное обновление, nil означает "не менять"
type MovieUpdate struct {
	Title         *string  `json:"title,omitempty" validate:"omitnil,min=1" example:"Dune: Part Two"`
	Genre         *Genre   `json:"genre,omitempty" validate:"omitnil,oneof=Action Comedy Drama Horror Sci-Fi Romance" example:"Sci-Fi"`
	Rating        *float64 `json:"rating,omitempty" validate:"omitnil,gte=0,lte=10" example:"9"`
	StreamingLink *string  `json:"streamingLink,omitempty" example:"http://example.com/dune-2"`
}

func (u MovieUpdate) Empty() bool {
	return u.Title == nil && u.Genre == nil && u.Rating == nil && u.StreamingLink == nil
}

// Apply : применяет заданные поля к фильму
func (u MovieUpdate) Apply(movie *Movie) {
	if u.Title != nil {
		movie.Title = *u.Title
	}
	if u.Genre != nil {
		movie.Genre = *u.Genre
	}
	if u.Rating != nil {
		movie.Rating = *u.Rating
	}
	if u.StreamingLink != nil {
		link := *u.StreamingLink
		movie.StreamingLink = &link
	}
}

// MovieFilter : пустой Query означает полный список
type MovieFilter struct {
	Query string
}

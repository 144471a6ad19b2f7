package repository

import (
	"context"
	"errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"movie-catalog/config"
	"movie-catalog/internal/model"
	"movie-catalog/internal/util"
	"regexp"
	"time"
)

const moviesCollection = "movies"

type movieDocument struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Title         string        `bson:"title"`
	Genre         string        `bson:"genre"`
	Rating        float64       `bson:"rating"`
	StreamingLink *string       `bson:"streamingLink"`
	CreatedAt     time.Time     `bson:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt"`
	DeletedAt     *time.Time    `bson:"deletedAt"`
}

func (d *movieDocument) toModel() model.Movie {
	return model.Movie{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Genre:         model.Genre(d.Genre),
		Rating:        d.Rating,
		StreamingLink: d.StreamingLink,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		DeletedAt:     d.DeletedAt,
	}
}

// MongoMovieRepository : коллекция movies в MongoDB
type MongoMovieRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoMovieRepository(database *config.MongoDatabase) *MongoMovieRepository {
	return &MongoMovieRepository{
		collection: database.Database.Collection(moviesCollection),
		now:        time.Now,
	}
}

// EnsureIndexes : уникальный составной индекс (title, genre) среди неудалённых документов
func (r *MongoMovieRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}, {Key: "genre", Value: 1}},
		Options: options.Index().
			SetName("title_genre_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"deletedAt": bson.M{"$type": "null"}}),
	}

	if _, err := r.collection.Indexes().CreateOne(ctx, index); err != nil {
		return util.LogError("[MongoMovieRepo] не удалось создать индекс (title, genre)", err)
	}
	return nil
}

func (r *MongoMovieRepository) Find(ctx context.Context, filter model.MovieFilter) ([]model.Movie, error) {
	cursor, err := r.collection.Find(ctx, mongoSearchFilter(filter.Query))
	if err != nil {
		return nil, util.LogError("[MongoMovieRepo] ошибка поиска фильмов", err)
	}

	var documents []movieDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, util.LogError("[MongoMovieRepo] ошибка чтения результатов поиска", err)
	}

	movies := make([]model.Movie, 0, len(documents))
	for i := range documents {
		movies = append(movies, documents[i].toModel())
	}
	return movies, nil
}

func (r *MongoMovieRepository) FindByID(ctx context.Context, id string) (*model.Movie, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrNotFound
	}

	var document movieDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID, "deletedAt": nil}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	} else if err != nil {
		return nil, util.LogError("[MongoMovieRepo] ошибка получения фильма", err)
	}

	movie := document.toModel()
	return &movie, nil
}

func (r *MongoMovieRepository) Create(ctx context.Context, newMovie *model.NewMovie) (*model.Movie, error) {
	now := r.timestamp()
	link := newMovie.StreamingLink
	document := movieDocument{
		ID:            bson.NewObjectID(),
		Title:         newMovie.Title,
		Genre:         string(newMovie.Genre),
		Rating:        newMovie.Rating,
		StreamingLink: &link,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := r.collection.InsertOne(ctx, document); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrConflict
		}
		return nil, util.LogError("[MongoMovieRepo] не удалось сохранить фильм", err)
	}

	movie := document.toModel()
	return &movie, nil
}

func (r *MongoMovieRepository) UpdateByID(ctx context.Context, id string, update *model.MovieUpdate) (*model.Movie, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrNotFound
	}

	set := bson.M{"updatedAt": r.timestamp()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Genre != nil {
		set["genre"] = string(*update.Genre)
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.StreamingLink != nil {
		set["streamingLink"] = *update.StreamingLink
	}

	var document movieDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID, "deletedAt": nil},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&document)

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, model.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return nil, model.ErrConflict
	case err != nil:
		return nil, util.LogError("[MongoMovieRepo] не удалось обновить фильм", err)
	}

	movie := document.toModel()
	return &movie, nil
}

func (r *MongoMovieRepository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "deletedAt": nil})
	if err != nil {
		return util.LogError("[MongoMovieRepo] не удалось удалить фильм", err)
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// MongoDB хранит время с точностью до миллисекунд
func (r *MongoMovieRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

// mongoSearchFilter : подстрока без учёта регистра в title или genre; спецсимволы запроса экранируются
func mongoSearchFilter(query string) bson.M {
	filter := bson.M{"deletedAt": nil}
	if query == "" {
		return filter
	}

	pattern := bson.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter["$or"] = bson.A{
		bson.M{"title": pattern},
		bson.M{"genre": pattern},
	}
	return filter
}

package handler

import (
	"github.com/go-chi/chi/v5"
	"movie-catalog/internal/model"
	"movie-catalog/internal/model/requestresponse"
	"movie-catalog/internal/ports"
	"movie-catalog/internal/util"
	"net/http"
)

type MovieHandler struct {
	ports.MovieService
}

func NewMovieHandler(movieService ports.MovieService) *MovieHandler {
	return &MovieHandler{movieService}
}

// ListMovies godoc
// @Summary Список фильмов
// @Description Возвращает все фильмы каталога. Ответ кэшируется на CACHE_TTL секунд.
// @Tags Movies
// @Produce json
// @Success 200 {array} model.Movie
// @Failure 429 {object} requestresponse.ErrorResponse "Превышен лимит запросов"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies [get]
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.MovieService.ListMovies(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, movies)
}

// SearchMovies godoc
// @Summary Поиск фильмов
// @Description Ищет подстроку q в названии или жанре без учёта регистра. Результат кэшируется по ключу search:<q>.
// @Tags Movies
// @Produce json
// @Param q query string true "Строка поиска"
// @Success 200 {array} model.Movie
// @Failure 400 {object} requestresponse.ErrorResponse "Не передан параметр q"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/search [get]
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.MovieService.SearchMovies(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, movies)
}

// GetMovie godoc
// @Summary Получение фильма
// @Description Возвращает фильм по идентификатору, без кэша
// @Tags Movies
// @Produce json
// @Param id path string true "Идентификатор фильма"
// @Success 200 {object} model.Movie
// @Failure 404 {object} requestresponse.ErrorResponse "Фильм не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.MovieService.GetMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

// CreateMovie godoc
// @Summary Добавление фильма
// @Description Все поля обязательны. Пара (title, genre) должна быть уникальной.
// @Tags Movies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.NewMovie true "Новый фильм"
// @Success 201 {object} model.Movie
// @Failure 400 {object} requestresponse.ErrorResponse "Отсутствует или некорректно поле"
// @Failure 401 {object} requestresponse.ErrorResponse "Не передан токен"
// @Failure 403 {object} requestresponse.ErrorResponse "Невалидный токен или нет роли admin"
// @Failure 409 {object} requestresponse.ErrorResponse "Фильм с таким названием и жанром уже существует"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var newMovie model.NewMovie
	if !decodeJSON(w, r, &newMovie) {
		return
	}

	movie, err := h.MovieService.CreateMovie(r.Context(), &newMovie)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, movie)
}

// UpdateMovie godoc
// @Summary Обновление фильма
// @Description Меняет только переданные поля. Сбрасывает кэш списка и поиска по новому названию.
// @Tags Movies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Идентификатор фильма"
// @Param body body model.MovieUpdate true "Изменяемые поля"
// @Success 200 {object} model.Movie
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректные поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Не передан токен"
// @Failure 403 {object} requestresponse.ErrorResponse "Невалидный токен или нет роли admin"
// @Failure 404 {object} requestresponse.ErrorResponse "Фильм не найден"
// @Failure 409 {object} requestresponse.ErrorResponse "Фильм с таким названием и жанром уже существует"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var update model.MovieUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	movie, err := h.MovieService.UpdateMovie(r.Context(), chi.URLParam(r, "id"), &update)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

// DeleteMovie godoc
// @Summary Удаление фильма
// @Tags Movies
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Идентификатор фильма"
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Не передан токен"
// @Failure 403 {object} requestresponse.ErrorResponse "Невалидный токен или нет роли admin"
// @Failure 404 {object} requestresponse.ErrorResponse "Фильм не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.MovieService.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.SuccessResponse{Message: "фильм успешно удалён"})
}

// HealthCheck godoc
// @Summary Проверка работоспособности
// @Tags Health
// @Produce plain
// @Success 200 {string} string "OK HEALTH!"
// @Router /health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK HEALTH!")); err != nil {
		util.LogError("[Handler] ошибка записи ответа", err)
	}
}

package main

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"io"
	"log"
	"movie-catalog/config"
	_ "movie-catalog/docs"
	"movie-catalog/internal/handler"
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/ports"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/security"
	"movie-catalog/internal/service"
	"movie-catalog/internal/util"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	memoryCacheCleanupInterval = 10 * time.Minute
	rateLimitCleanupInterval   = time.Minute
)

// @title Movie Catalog
// @version 1.0
// @description REST API каталога фильмов с кэшированием в Redis

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Ошибка чтения .env: %v", err)
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := util.NewLogger(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if cfg.JWT.SecretKey == "" {
		logger.Warn("SECRET_KEY не задан: вход администратора и изменение каталога будут недоступны")
	}

	var closers []io.Closer
	defer func() {
		if err := closeAll(closers); err != nil {
			logger.Error("Ошибка при закрытии соединений", zap.Error(err))
		}
	}()

	movieRepo, closer, err := setupMovieRepository(ctx, &cfg.DatabaseConfig)
	if err != nil {
		logger.Fatal("Не удалось подключиться к хранилищу фильмов", zap.String("driver", cfg.DatabaseConfig.Driver), zap.Error(err))
	}
	if closer != nil {
		closers = append(closers, closer)
	}

	cacheRepo, closer := setupCacheRepository(&cfg.RedisConfig)
	if closer != nil {
		closers = append(closers, closer)
	}

	jwtService := security.NewJWTService(&cfg.JWT)
	movieService := service.NewMovieService(movieRepo, cacheRepo, &cfg.Cache)
	authService := service.NewAuthenticationService(&cfg.Admin, jwtService)

	movieHandler := handler.NewMovieHandler(movieService)
	authHandler := handler.NewAuthenticationHandler(authService)

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)
	go rateLimiter.Run(ctx, rateLimitCleanupInterval)

	srv, router := config.SetupServer(&cfg.Server)
	setupMiddlewares(router, cfg, logger, rateLimiter)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	handler.RegisterRoutes(router, movieHandler, authHandler, jwtService)

	runServer(ctx, srv, cfg.Server.ShutdownTimeout)
}

func setupMiddlewares(r chi.Router, cfg *config.AppConfig, logger *zap.Logger, rateLimiter *middleware.RateLimiter) {
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigin))
	r.Use(rateLimiter.Middleware)
}

// setupMovieRepository : ошибка подключения к хранилищу при старте фатальна.
// Если соединение открыто, но схема не создана, соединение закрывается здесь: logger.Fatal не выполняет defer.
func setupMovieRepository(ctx context.Context, cfg *config.DatabaseConfig) (ports.MovieRepository, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := config.SetupDatabase(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPostgresMovieRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, nil, closeAll([]io.Closer{db}, err)
		}
		return repo, db, nil

	case config.DriverMemory:
		zap.L().Warn("Используется in-memory хранилище, данные не сохраняются между запусками")
		return repository.NewMemoryMovieRepository(), nil, nil

	default:
		mongoDB, err := config.SetupMongo(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewMongoMovieRepository(mongoDB)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, nil, closeAll([]io.Closer{mongoDB}, err)
		}
		return repo, mongoDB, nil
	}
}

// setupCacheRepository : без REDIS_ADDR кэш живёт в памяти процесса
func setupCacheRepository(cfg *config.RedisConfig) (ports.CacheRepository, io.Closer) {
	if cfg.Addr == "" {
		zap.L().Info("REDIS_ADDR не задан, используется in-memory кэш")
		return repository.NewMemoryCacheRepository(memoryCacheCleanupInterval), nil
	}

	redisClient, err := config.SetupRedis(cfg)
	if err != nil {
		zap.L().Warn("Redis не настроен, используется in-memory кэш", zap.Error(err))
		return repository.NewMemoryCacheRepository(memoryCacheCleanupInterval), nil
	}
	return repository.NewCacheRepository(redisClient), redisClient
}

// closeAll : закрывает ресурсы в обратном порядке открытия и объединяет ошибки с cause
func closeAll(closers []io.Closer, cause ...error) error {
	err := multierr.Combine(cause...)
	for i := len(closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, closers[i].Close())
	}
	return err
}

func runServer(ctx context.Context, server *http.Server, shutdownTimeout time.Duration) {
	serverErrors := make(chan error, 1)
	go func() {
		zap.L().Info("сервер запущен", zap.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Error("ошибка работы сервера", zap.Error(err))
			return
		}
	case sig := <-signalChannel:
		zap.L().Info("получен сигнал остановки работы сервера", zap.String("signal", sig.String()))
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, shutdownTimeout)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		zap.L().Error("ошибка при остановке сервера", zap.Error(err))
	} else {
		zap.L().Info("Сервер успешно остановлен")
	}
}

package config

import (
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
	"net/http"
	"os"
	"time"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type AppConfig struct {
	Server         ServerConfig    `yaml:"server"`
	DatabaseConfig DatabaseConfig  `yaml:"databaseConfig"`
	RedisConfig    RedisConfig     `yaml:"redisConfig"`
	Cache          CacheConfig     `yaml:"cache"`
	JWT            JWTConfig       `yaml:"jwt"`
	Admin          AdminConfig     `yaml:"admin"`
	CORS           CORSConfig      `yaml:"cors"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Logger         LoggerConfig    `yaml:"logger"`
}

// DefaultConfig : значения по умолчанию, поверх них накладываются файл и переменные окружения
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		DatabaseConfig: DatabaseConfig{
			Driver: DriverMongo,
			Name:   "movies",
		},
		Cache: CacheConfig{
			TTLSeconds: 3600,
		},
		CORS: CORSConfig{
			AllowedOrigin: "http://localhost:3000",
		},
		RateLimit: RateLimitConfig{
			Max:    100,
			Window: time.Hour,
		},
		Logger: LoggerConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// LoadConfig : читает yaml (если файл есть) и применяет переменные окружения
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	default:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора файла конфигурации: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate : проверяет настройки, без которых сервер запускать нельзя.
// Отсутствие SECRET_KEY не считается ошибкой: выдача и проверка токенов отказывают на каждом запросе.
func (c *AppConfig) Validate() error {
	switch c.DatabaseConfig.Driver {
	case DriverMongo, DriverPostgres:
		if c.DatabaseConfig.DSN == "" {
			return fmt.Errorf("не задана строка подключения к БД (DB_CONNECTION_STRING) для драйвера %s", c.DatabaseConfig.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("неизвестный драйвер БД: %q", c.DatabaseConfig.Driver)
	}

	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("CACHE_TTL должен быть больше нуля, получено %d", c.Cache.TTLSeconds)
	}
	if c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("некорректные параметры ограничения запросов: max=%d window=%s", c.RateLimit.Max, c.RateLimit.Window)
	}

	return nil
}

func SetupServer(cfg *ServerConfig) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}

package config

import "time"

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"SERVER_ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig : Driver определяет хранилище фильмов (mongo, postgres, memory)
type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DB_DRIVER"`
	DSN    string `yaml:"dsn" env:"DB_CONNECTION_STRING"`
	Name   string `yaml:"name" env:"DB_NAME"`
}

// RedisConfig : пустой Addr означает in-memory кэш внутри процесса
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type CacheConfig struct {
	TTLSeconds     int  `yaml:"ttl_seconds" env:"CACHE_TTL"`
	DegradeOnError bool `yaml:"degrade_on_error" env:"CACHE_DEGRADE_ON_ERROR"`
}

type JWTConfig struct {
	SecretKey string `yaml:"secret_key" env:"SECRET_KEY"`
}

type AdminConfig struct {
	AccessKey string `yaml:"access_key" env:"ADMIN_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"ADMIN_SECRET_KEY"`
}

type CORSConfig struct {
	AllowedOrigin string `yaml:"allowed_origin" env:"CORS_ORIGIN"`
}

type RateLimitConfig struct {
	Max    int           `yaml:"max" env:"RATE_LIMIT_MAX"`
	Window time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW"`
}

type LoggerConfig struct {
	Level    string `yaml:"level" env:"LOG_LEVEL"`
	Encoding string `yaml:"encoding" env:"LOG_ENCODING"`
}

// TTL : время жизни записей кэша в секундах
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

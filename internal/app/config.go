package app

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/flavio-cbz/logistix-pro/internal/api/http"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/click"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/kafka"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/mongo"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/pg"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/redis"
)

const AppName = "LOGISTIX"

// Хранилища и кэши, между которыми выбирает конфиг.
const (
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"

	CacheRedis  = "redis"
	CacheMemory = "memory"
)

// CacheConfig — настройки кэша рекомендаций. Переменные: LOGISTIX_CACHE_BACKEND, LOGISTIX_CACHE_TTL.
type CacheConfig struct {
	Backend string        `envconfig:"BACKEND" default:"redis"` // redis | memory
	TTL     time.Duration `envconfig:"TTL" default:"3600s"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом LOGISTIX.
type Config struct {
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	Storage    string            `envconfig:"STORAGE" default:"postgres"` // postgres | mongo
	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Cache      CacheConfig       `envconfig:"CACHE"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

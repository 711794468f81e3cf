package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	RedisURL       string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	UploadTTL      time.Duration `envconfig:"UPLOAD_TTL" default:"24h"`
	UploadMaxBytes int64         `envconfig:"UPLOAD_MAX_BYTES" default:"5242880"`
}

// Load читает конфигурацию из окружения, с .env.local/.env как fallback
func Load() (Config, error) {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string `env:"API_BASE_URL" env-default:"http://localhost:8000/api"`
	ServerPort    string `env:"SERVER_PORT" env-default:"8080"`
	SessionSecret string `env:"SESSION_SECRET"`

	// Opcionais: auditoria local e cache de respostas.
	AuditDSN      string `env:"AUDIT_DB_DSN"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	Env string `env:"ENV" env-default:"dev"`
}

func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return &cfg
}

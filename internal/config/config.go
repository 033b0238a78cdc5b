package config

import "github.com/caarlos0/env/v10"

// Config centralizes the service configuration.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8080"`
	CatalogSource     string `env:"CATALOG_SOURCE" envDefault:"csv"`
	CatalogPath       string `env:"CATALOG_PATH" envDefault:"data/catalog.csv"`
	QuestionnairePath string `env:"QUESTIONNAIRE_PATH" envDefault:"data/questionnaire.yaml"`
	DatabaseURL       string `env:"DATABASE_URL"`
	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	TopK              int    `env:"TOP_K" envDefault:"5"`
	ScoreRateMax      int    `env:"SCORE_RATE_MAX" envDefault:"30"`
	ScoreRateWindow   int    `env:"SCORE_RATE_WINDOW_SECONDS" envDefault:"60"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

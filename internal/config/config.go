package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type App struct {
	Port            string `env:"API_PORT" envDefault:"8080"`
	DBConnectionURL string `env:"DB_CONNECTION_URL,required"`
}

func NewApp() (App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

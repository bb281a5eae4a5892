package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

const DefaultItemsPerPage = 6

type Config struct {
	RunAddress   string
	DatabaseURI  string
	SecretKey    string
	ItemsPerPage int
	Logger       *zap.SugaredLogger
}

type environment struct {
	RunAddress   string `env:"RUN_ADDRESS"`
	DatabaseURI  string `env:"DATABASE_URI"`
	SecretKey    string `env:"SECRET_KEY"`
	ItemsPerPage int    `env:"ITEMS_PER_PAGE"`
}

func NewConfig() (*Config, error) {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout", "server.log"}

	logger := zap.Must(logCfg.Build())

	cfg := &Config{}
	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "DB connection string")
	flag.StringVar(&cfg.SecretKey, "k", "", "session signing key")
	flag.IntVar(&cfg.ItemsPerPage, "p", DefaultItemsPerPage, "users per dashboard page")
	flag.Parse()

	cfg.Logger = logger.Sugar()

	if err := ReadServerEnvironment(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReadServerEnvironment overrides cfg with the environment values that are set.
func ReadServerEnvironment(cfg *Config) error {
	var e environment
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if e.RunAddress != "" {
		cfg.RunAddress = e.RunAddress
	}

	if e.DatabaseURI != "" {
		cfg.DatabaseURI = e.DatabaseURI
	}

	if e.SecretKey != "" {
		cfg.SecretKey = e.SecretKey
	}

	if e.ItemsPerPage != 0 {
		cfg.ItemsPerPage = e.ItemsPerPage
	}

	if cfg.ItemsPerPage <= 0 {
		cfg.ItemsPerPage = DefaultItemsPerPage
	}

	return nil
}

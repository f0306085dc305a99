package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const defaultAddr = ":3001"

// Config holds the server settings read from the environment.
type Config struct {
	Addr string
}

// Load reads an optional .env file and then the process environment.
// A missing .env is not an error; defaults cover everything.
func Load(logger *slog.Logger) Config {
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded environment from .env")
	}
	cfg := Config{Addr: defaultAddr}
	if v := os.Getenv("PONG_ADDR"); v != "" {
		cfg.Addr = v
	}
	return cfg
}

// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the server process.
//
// HOST and PORT follow the container conventions of MCP host deployments:
// the HTTP transport binds HOST:PORT, defaulting to all interfaces on 3001.
type Config struct {
	Host     string `env:"HOST" envDefault:"0.0.0.0"`
	Port     int    `env:"PORT" envDefault:"3001"`
	LogLevel string `env:"QR_MCP_LOG_LEVEL"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; variables already set in the
// environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Addr returns the HOST:PORT listen address for the HTTP transport.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Package config provides shared configuration utilities.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server configures the SSH frontend.
type Server struct {
	Host        string `env:"SSH_HOST" envDefault:"::"`
	Port        string `env:"SSH_PORT" envDefault:"2222"`
	HostKeyPath string `env:"SSH_HOST_KEY" envDefault:"/app/keys/host_key"`
	Game        Game
}

// Web configures the landing page and browser build server.
type Web struct {
	Host           string `env:"WEB_HOST" envDefault:"0.0.0.0"`
	Port           string `env:"WEB_PORT" envDefault:"8080"`
	StaticDir      string `env:"WEB_STATIC_DIR" envDefault:"web"`
	SSHDisplayHost string `env:"SSH_DISPLAY_HOST" envDefault:"your-server.com"`
}

// Game holds settings shared by every frontend that runs the game loop.
type Game struct {
	TuningPath string `env:"DODGER_TUNING"`
	LogFile    string `env:"DODGER_LOG_FILE"`
	LogLevel   string `env:"DODGER_LOG_LEVEL" envDefault:"info"`
}

// Load parses environment variables into a new T.
func Load[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Tuning returns the tuning referenced by DODGER_TUNING, or the defaults.
func (g Game) Tuning() (Tuning, error) {
	if g.TuningPath == "" {
		return DefaultTuning(), nil
	}
	return LoadTuning(g.TuningPath)
}

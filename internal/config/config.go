package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StateDriverSQLite = "sqlite"
	StateDriverRedis  = "redis"
	StateDriverMemory = "memory"
)

type Config struct {
	Env string `env:"ENV" envDefault:"dev"` // dev / staging / prod

	HTTP HTTP `envPrefix:"HTTP_"`

	// Simulated credential-check latency.
	AuthDelay time.Duration `env:"AUTH_DELAY" envDefault:"1s"`

	State     State     `envPrefix:"STATE_"`
	Redis     Redis     `envPrefix:"REDIS_"`
	Rabbit    Rabbit    `envPrefix:"RABBIT_"`
	RateLimit RateLimit `envPrefix:"RL_AUTH_"`
}

type HTTP struct {
	Addr         string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"1m"`

	// ShutdownTimeout is the drain budget after a stop signal. One
	// AUTH_DELAY is added on top so a pending sign-in can finish.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// State selects where the session slot is persisted.
type State struct {
	Driver     string `env:"DRIVER" envDefault:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"grandveggie.db"`
}

type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Rabbit may be left empty in dev; events are then only logged.
type Rabbit struct {
	URL      string `env:"URL"`
	Exchange string `env:"EXCHANGE" envDefault:"grandveggie.events"`
}

// RateLimit bounds login/register attempts per client IP.
type RateLimit struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Limit   int           `env:"LIMIT" envDefault:"10"`
	Window  time.Duration `env:"WINDOW" envDefault:"1m"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case "dev", "staging", "prod":
	default:
		return fmt.Errorf("invalid ENV %q (want dev, staging or prod)", c.Env)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("missing required env var: HTTP_ADDR")
	}
	for name, d := range map[string]time.Duration{
		"HTTP_READ_TIMEOUT":     c.HTTP.ReadTimeout,
		"HTTP_WRITE_TIMEOUT":    c.HTTP.WriteTimeout,
		"HTTP_IDLE_TIMEOUT":     c.HTTP.IdleTimeout,
		"HTTP_SHUTDOWN_TIMEOUT": c.HTTP.ShutdownTimeout,
		"AUTH_DELAY":            c.AuthDelay,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}

	switch c.State.Driver {
	case StateDriverSQLite:
		if c.State.SQLitePath == "" {
			return fmt.Errorf("missing required env var: STATE_SQLITE_PATH")
		}
	case StateDriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("missing required env var: REDIS_ADDR")
		}
	case StateDriverMemory:
	default:
		return fmt.Errorf("invalid STATE_DRIVER %q (want sqlite, redis or memory)", c.State.Driver)
	}

	if c.Env != "dev" && c.Rabbit.URL == "" {
		return fmt.Errorf("missing RABBIT_URL (required when ENV != dev)")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Limit <= 0 {
			return fmt.Errorf("RL_AUTH_LIMIT must be positive, got %d", c.RateLimit.Limit)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("RL_AUTH_WINDOW must be positive, got %s", c.RateLimit.Window)
		}
	}
	return nil
}

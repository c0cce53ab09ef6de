package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"

	"github.com/dukerupert/mercado/internal/model"
)

// Prefix is prepended to every environment variable, e.g. MERCADO_PORT.
const Prefix = "MERCADO"

// Config holds all runtime settings.
type Config struct {
	Port     string `conf:"default:8080"`
	DBPath   string `conf:"default:mercado.db"`
	LogLevel string `conf:"default:info"`

	// DefaultTheme is used until the user picks one.
	DefaultTheme string `conf:"default:dark,enum:light|dark"`
	// Timezone for timestamps in exported text.
	Timezone string `conf:"default:America/Sao_Paulo"`

	BackupPassphrase string `conf:"noprint"`
}

// Load reads a .env file when present and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Command-line flags belong to the cobra commands; conf only sees the
	// program name. Load swaps the global os.Args and must not run
	// concurrently.
	args := os.Args
	os.Args = args[:1]
	defer func() { os.Args = args }()

	var cfg Config
	if _, err := conf.Parse(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Theme() model.Theme {
	return model.Theme(c.DefaultTheme)
}

// Location resolves Timezone, falling back to the local zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// String renders the configuration with secrets masked.
func (c *Config) String() string {
	out, err := conf.String(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return out
}

// Package config reads database settings from the environment once at
// startup and hands them to the rest of the application as a typed struct.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Database holds the PostgreSQL connection parameters. Host, name, user and
// password come from DB_HOST, DB_NAME, DB_USER and DB_PASSWORD; port and
// sslmode are optional knobs with defaults.
type Database struct {
	Host     string `koanf:"host" validate:"required"`
	Port     string `koanf:"port"`
	Name     string `koanf:"name" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	SSLMode  string `koanf:"sslmode"`
}

type Config struct {
	Database Database
}

// Load reads a .env file if one exists, then the DB_* environment variables.
// It fails when a required variable is missing so the server refuses to start
// half-configured.
func Load() (*Config, error) {
	// Missing .env is fine, variables may come from the real environment.
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("DB_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DB_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var db Database
	if err := k.Unmarshal("", &db); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if db.Port == "" {
		db.Port = "5432"
	}
	if db.SSLMode == "" {
		db.SSLMode = "disable"
	}

	if err := validator.New().Struct(db); err != nil {
		return nil, fmt.Errorf("incomplete database config: %w", err)
	}

	return &Config{Database: db}, nil
}

// DSN builds a postgres connection URL. The connect timeout keeps a dead
// database from stalling requests forever.
func (d Database) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host + ":" + d.Port,
		Path:   d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	q.Set("connect_timeout", "5")
	u.RawQuery = q.Encode()
	return u.String()
}

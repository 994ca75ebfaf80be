package config

import (
	"strings"
	"testing"
)

func setFullEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "coffee")
	t.Setenv("DB_USER", "barista")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_SSLMODE", "")
}

func TestLoadDefaults(t *testing.T) {
	setFullEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	db := cfg.Database
	if db.Host != "db.internal" || db.Name != "coffee" || db.User != "barista" || db.Password != "s3cret" {
		t.Fatalf("wrong config: %+v", db)
	}
	if db.Port != "5432" {
		t.Fatalf("port default = %q, want 5432", db.Port)
	}
	if db.SSLMode != "disable" {
		t.Fatalf("sslmode default = %q, want disable", db.SSLMode)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setFullEnv(t)
	t.Setenv("DB_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DB_PASSWORD")
	}
}

func TestDSN(t *testing.T) {
	db := Database{
		Host:     "localhost",
		Port:     "5432",
		Name:     "coffee",
		User:     "barista",
		Password: "p@ss/word",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	if !strings.HasPrefix(dsn, "postgres://") {
		t.Fatalf("dsn = %q", dsn)
	}
	for _, want := range []string{"localhost:5432", "/coffee", "sslmode=disable", "connect_timeout=5"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("dsn %q missing %q", dsn, want)
		}
	}
	if strings.Contains(dsn, "p@ss/word") {
		t.Errorf("password not escaped in %q", dsn)
	}
}

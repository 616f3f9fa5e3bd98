package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, BackendSQLite, cfg.Session.Backend)
	assert.Equal(t, "./swifttrack.db", cfg.Session.SQLitePath)
	assert.Equal(t, 20, cfg.RateLimit.GeneralBurst)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://tunnel.example.dev/")
	t.Setenv("SESSION_BACKEND", "MEMORY")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://tunnel.example.dev", cfg.API.BaseURL)
	assert.Equal(t, BackendMemory, cfg.Session.Backend)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadFromRejectsIncompletePostgresBackend(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "postgres")

	_, err := LoadFrom(viper.New())
	assert.ErrorContains(t, err, "DB_HOST")
}

func TestLoadFromRejectsUnknownBackend(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "redis")

	_, err := LoadFrom(viper.New())
	assert.ErrorContains(t, err, "redis")
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "swift", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=swift sslmode=disable", db.DSN())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.RequestTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, uint(5), cfg.Database.ConnectAttempts)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	body := []byte(`
env: prod
http_server:
  port: 9090
database:
  driver: sqlite
  sqlite_path: /tmp/review.db
  host: db.internal
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), body, 0o600))
	t.Setenv("DATABASE_HOST", "override.internal")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/review.db", cfg.Database.SQLitePath)
	assert.Equal(t, "override.internal", cfg.Database.Host)
}

func TestLoad_UnknownDriver(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("database:\n  driver: mongo\n"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestDatabase_DSN(t *testing.T) {
	d := Database{Username: "u", Password: "p", Host: "h", Port: "5432", DbName: "db"}
	assert.Equal(t, "postgresql://u:p@h:5432/db?sslmode=disable", d.DSN())
}

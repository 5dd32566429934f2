package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[storage]
driver = "memory"

[calendar]
seed_years = [2025, 2026]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, []int{2025, 2026}, cfg.Calendar.SeedYears)
}

func TestLoad_Postgres(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "calendar"
password = "secret"
dbname = "billboards"

[metrics]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "host=db port=5432 user=calendar password=secret dbname=billboards sslmode=disable", cfg.Database.DSN())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"postgres without host", `[storage]
driver = "postgres"`},
		{"unknown driver", `[storage]
driver = "mongo"`},
		{"bad port", `[server]
http_port = 70000
[storage]
driver = "memory"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "salon"
dbname = "salon"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 14, cfg.Seed.DaysAhead)
	assert.Equal(t, 1, cfg.Seed.MaxCapacity)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing host", `
[database]
user = "salon"
dbname = "salon"
`},
		{"missing user", `
[database]
host = "localhost"
dbname = "salon"
`},
		{"missing dbname", `
[database]
host = "localhost"
user = "salon"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "salon",
		Password: "secret",
		DBName:   "salon",
		SSLMode:  "disable",
	}

	dsn := db.DSN()

	assert.Equal(t,
		"host=localhost port=5432 user=salon password=secret dbname=salon sslmode=disable timezone=UTC",
		dsn)
	// Пояс сессии всегда UTC: даты из DATE колонок должны возвращаться
	// канонической полуночью UTC независимо от настроек сервера
	assert.Contains(t, dsn, "timezone=UTC")
}

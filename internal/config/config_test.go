package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save and restore environment variables after the test
	envVars := []string{
		"DB_TYPE", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"APP_PORT", "IMPORTER_BASE_URL", "IMPORTER_RELEASE_URL", "IMPORTER_HTTP_TIMEOUT_SECONDS",
	}
	originalEnv := make(map[string]string)
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key) // Clear before test
	}
	defer func() {
		for key, val := range originalEnv {
			if val != "" {
				os.Setenv(key, val)
			}
		}
	}()

	t.Run("Default values", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DBTypeMemory, cfg.DB.Type)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "https://raw.githubusercontent.com/dr5hn/countries-states-cities-database/master", cfg.Importer.BaseURL)
		assert.Equal(t, 60*time.Second, cfg.Importer.HTTPTimeout)
	})

	t.Run("Custom environment variables", func(t *testing.T) {
		t.Setenv("DB_TYPE", "postgres")
		t.Setenv("DB_HOST", "test-db")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("IMPORTER_BASE_URL", "http://localhost:9999")
		t.Setenv("IMPORTER_HTTP_TIMEOUT_SECONDS", "5")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DBTypePostgreSQL, cfg.DB.Type)
		assert.Equal(t, "test-db", cfg.DB.Host)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "http://localhost:9999", cfg.Importer.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Importer.HTTPTimeout)
	})

	t.Run("Invalid integer fallback", func(t *testing.T) {
		t.Setenv("IMPORTER_HTTP_TIMEOUT_SECONDS", "not-a-number")
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 60*time.Second, cfg.Importer.HTTPTimeout)
	})

	t.Run("Unknown DB type falls back to memory", func(t *testing.T) {
		t.Setenv("DB_TYPE", "oracle")
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DBTypeMemory, cfg.DB.Type)
	})
}

func TestDBConfig_DSN(t *testing.T) {
	t.Run("Memory default", func(t *testing.T) {
		cfg := DBConfig{Type: DBTypeMemory}
		assert.Equal(t, "file::memory:?cache=shared", cfg.DSN())
	})

	t.Run("Memory named", func(t *testing.T) {
		cfg := DBConfig{Type: DBTypeMemory, Name: "testdb_1"}
		assert.Equal(t, "file:testdb_1?mode=memory&cache=shared", cfg.DSN())
	})

	t.Run("Postgres", func(t *testing.T) {
		cfg := DBConfig{
			Type: DBTypePostgreSQL, Host: "db", Port: "5432",
			User: "geodata", Password: "secret", Name: "geodata", SSLMode: "disable",
		}
		assert.Equal(t, "postgres://geodata:secret@db:5432/geodata?sslmode=disable", cfg.DSN())
	})
}

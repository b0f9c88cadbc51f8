package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "DATABASE_URL", "STORE_FILE", "EXPOSE_DEBUG", "DB_DRIVER", "SQLITE_PATH"} {
		t.Setenv(key, "")
	}

	cfg := fromEnv()
	require.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "local-db", cfg.DatabaseURL)
	assert.Equal(t, "database/db.json", cfg.StoreFile)
	assert.True(t, cfg.ExposeDebug)
	assert.False(t, cfg.IsProd)
	assert.Equal(t, "users.db", cfg.DSN())
}

func TestFromEnvProductionHidesDebug(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("EXPOSE_DEBUG", "")

	cfg := fromEnv()
	assert.True(t, cfg.IsProd)
	assert.False(t, cfg.ExposeDebug)

	t.Setenv("EXPOSE_DEBUG", "true")
	assert.True(t, fromEnv().ExposeDebug)
}

func TestDSNForMySQL(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "directory")

	assert.Equal(t, "root:secret@tcp(db:3307)/directory?parseTime=true", fromEnv().DSN())
}

func TestBlankValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "   ")
	t.Setenv("DATABASE_URL", "")

	cfg := fromEnv()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "local-db", cfg.DatabaseURL)
}

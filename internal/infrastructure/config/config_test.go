package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"NOTAS_APP_NAME":          os.Getenv("NOTAS_APP_NAME"),
		"NOTAS_APP_ENV":           os.Getenv("NOTAS_APP_ENV"),
		"NOTAS_APP_PORT":          os.Getenv("NOTAS_APP_PORT"),
		"NOTAS_DATABASE_HOST":     os.Getenv("NOTAS_DATABASE_HOST"),
		"NOTAS_DATABASE_PORT":     os.Getenv("NOTAS_DATABASE_PORT"),
		"NOTAS_DATABASE_USER":     os.Getenv("NOTAS_DATABASE_USER"),
		"NOTAS_DATABASE_PASSWORD": os.Getenv("NOTAS_DATABASE_PASSWORD"),
		"NOTAS_DATABASE_DBNAME":   os.Getenv("NOTAS_DATABASE_DBNAME"),
		"NOTAS_JWT_SECRET":        os.Getenv("NOTAS_JWT_SECRET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "notaventas-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "notaventas", cfg.Database.DBName)
		assert.Equal(t, time.Hour, cfg.JWT.AccessTokenExpiration)
		assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenExpiration)
		assert.Equal(t, "lax", cfg.Cookie.SameSite)
		assert.Equal(t, 180, cfg.Reports.DefaultWindowDays)
		assert.Equal(t, 1825, cfg.Reports.MaxWindowDays)
	})

	t.Run("loads values from environment variables with NOTAS prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("NOTAS_APP_NAME", "test-app")
		os.Setenv("NOTAS_APP_PORT", "9000")
		os.Setenv("NOTAS_DATABASE_HOST", "testdb.local")
		os.Setenv("NOTAS_DATABASE_PORT", "5433")
		os.Setenv("NOTAS_DATABASE_USER", "testuser")
		os.Setenv("NOTAS_DATABASE_PASSWORD", "testpass")
		os.Setenv("NOTAS_DATABASE_DBNAME", "testdb")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testdb", cfg.Database.DBName)
	})

	t.Run("production requires jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("NOTAS_APP_ENV", "production")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "ventas",
		Password: "p@ss/word",
		DBName:   "notaventas",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// special characters must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "redis.local", Port: 6380}
	assert.Equal(t, "redis.local:6380", cfg.Addr())
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigAppliesLocalDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("REDIS_ADDR", "")

	cfg := LoadConfig()
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "127.0.0.1", cfg.DBHost)
	require.Equal(t, "3306", cfg.DBPort)
	require.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser:     "app",
		DBPassword: "secret",
		DBHost:     "db.internal",
		DBPort:     "3306",
		DBName:     "fintrack",
	}
	require.Equal(t, "app:secret@tcp(db.internal:3306)/fintrack?parseTime=true", cfg.DSN())
}

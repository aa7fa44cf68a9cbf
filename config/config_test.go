package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("SESSION_TTL", "")

	cfg := Load()

	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.HasAdminBootstrap())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_NAME", "bookings_test")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("ADMIN_USERNAME", "root_admin")
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("ADMIN_PASSWORD", "Str0ng!Pass")

	cfg := Load()

	assert.Equal(t, "bookings_test", cfg.DBName)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.HasAdminBootstrap())
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	cfg := &Config{LogLevel: "chatty", LogFormat: "json"}

	logger := cfg.NewLogger()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

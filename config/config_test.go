package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("TIMEZONE", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, DriverFirestore, cfg.StoreDriver)
	assert.Equal(t, "Europe/Oslo", cfg.Location().String())
	assert.Equal(t, "common", cfg.MicrosoftTenant)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()

	assert.ErrorContains(t, err, "JWTSecret")
}

func TestLoadPostgresNeedsDatabaseSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORE_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "henteklar")
	t.Setenv("DB_NAME", "henteklar")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5432", cfg.DBPort)
}

func TestLoadRejectsUnknownDriverAndTimezone(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("STORE_DRIVER", "mongo")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "")
	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err = Load()
	assert.ErrorContains(t, err, "TIMEZONE")
}

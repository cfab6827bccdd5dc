package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("MARKET_DATABASE__DSN", "postgres://market@localhost/market")
	t.Setenv("MARKET_SESSION__SECRET", "0123456789abcdef0123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "mp_session", cfg.Session.Name)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "uploads", cfg.Server.UploadDir)
	assert.Empty(t, cfg.Server.TrustedProxies)
	assert.False(t, cfg.IsProduction())
}

func TestLoadReadsNestedKeys(t *testing.T) {
	t.Setenv("MARKET_PRIMARY__ENV", "production")
	t.Setenv("MARKET_SERVER__PORT", "9090")
	t.Setenv("MARKET_DATABASE__DRIVER", "mysql")
	t.Setenv("MARKET_DATABASE__DSN", "market:pw@tcp(localhost:3306)/market")
	t.Setenv("MARKET_DATABASE__MAX_OPEN_CONNS", "7")
	t.Setenv("MARKET_DATABASE__AUTO_MIGRATE", "true")
	t.Setenv("MARKET_SESSION__SECRET", "0123456789abcdef0123")
	t.Setenv("MARKET_RATE_LIMIT__LOGIN_PER_MINUTE", "3")
	t.Setenv("MARKET_SERVER__TRUSTED_PROXIES", "10.0.0.1,192.168.0.0/16")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 3, cfg.RateLimit.LoginPerMinute)
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.Server.TrustedProxies)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Run("missing dsn", func(t *testing.T) {
		t.Setenv("MARKET_SESSION__SECRET", "0123456789abcdef0123")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("MARKET_DATABASE__DRIVER", "oracle")
		t.Setenv("MARKET_DATABASE__DSN", "x")
		t.Setenv("MARKET_SESSION__SECRET", "0123456789abcdef0123")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad trusted proxy", func(t *testing.T) {
		t.Setenv("MARKET_DATABASE__DSN", "x")
		t.Setenv("MARKET_SESSION__SECRET", "0123456789abcdef0123")
		t.Setenv("MARKET_SERVER__TRUSTED_PROXIES", "not-an-ip")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short session secret", func(t *testing.T) {
		t.Setenv("MARKET_DATABASE__DSN", "x")
		t.Setenv("MARKET_SESSION__SECRET", "short")
		_, err := Load()
		assert.Error(t, err)
	})
}

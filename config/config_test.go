package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stockroute/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "JWT_EXPIRY_MIN", "RATE_LIMIT_MAX_REQUESTS", "SEED_DEMO", "METRICS_ENABLED", "JWT_SECRET_KEY"} {
		t.Setenv(key, "")
	}

	cfg := config.LoadConfig()

	assert.Equal(t, "", cfg.Port, "variável definida como vazia é respeitada")
	assert.Equal(t, 60*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.False(t, cfg.SeedDemo)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY_MIN", "15")
	t.Setenv("CACHE_TIMEOUT_SEC", "3")
	t.Setenv("RATE_LIMIT_PERIOD_MIN", "2")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("METRICS_ENABLED", "0")
	t.Setenv("OPERATOR_EMAIL", "op@stockroute.local")

	cfg := config.LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, 3*time.Second, cfg.CacheTimeout)
	assert.Equal(t, 2*time.Minute, cfg.RateLimitPeriod)
	assert.True(t, cfg.SeedDemo)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "op@stockroute.local", cfg.OperatorEmail)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "muitos")
	t.Setenv("SEED_DEMO", "talvez")

	cfg := config.LoadConfig()

	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.False(t, cfg.SeedDemo)
}

func TestValidateForServer_Fail_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	err := config.LoadConfig().ValidateForServer()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestValidateForServer_Success(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "10")

	assert.NoError(t, config.LoadConfig().ValidateForServer())
}

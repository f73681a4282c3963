package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"CONTENTSCHEMA_ADDR", "CONTENTSCHEMA_DATABASE_URL", "CONTENTSCHEMA_REDIS_URL", "CONTENTSCHEMA_CACHE_TTL", "CONTENTSCHEMA_LANG"} {
		t.Setenv(k, "")
	}
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{Addr: ":8080", CacheTTL: 5 * time.Minute, Lang: "en"}, cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("CONTENTSCHEMA_ADDR", ":9090")
	t.Setenv("CONTENTSCHEMA_DATABASE_URL", "postgres://cms@localhost/cms")
	t.Setenv("CONTENTSCHEMA_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CONTENTSCHEMA_CACHE_TTL", "30s")
	t.Setenv("CONTENTSCHEMA_LANG", "ja")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Addr:        ":9090",
		DatabaseURL: "postgres://cms@localhost/cms",
		RedisURL:    "redis://localhost:6379/0",
		CacheTTL:    30 * time.Second,
		Lang:        "ja",
	}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("CONTENTSCHEMA_CACHE_TTL", "soon")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "CONTENTSCHEMA_CACHE_TTL")

	t.Setenv("CONTENTSCHEMA_CACHE_TTL", "-1s")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "must be positive")

	t.Setenv("CONTENTSCHEMA_CACHE_TTL", "0")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "must be positive, got 0s")

	t.Setenv("CONTENTSCHEMA_CACHE_TTL", "")
	t.Setenv("CONTENTSCHEMA_LANG", "fr")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "unsupported language")
}

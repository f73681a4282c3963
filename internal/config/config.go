package config

import (
	"fmt"
	"os"
	"time"
)

// Config is the runtime configuration of the content service.
type Config struct {
	Addr        string
	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration
	Lang        string
}

const (
	defaultAddr     = ":8080"
	defaultCacheTTL = 5 * time.Minute
)

// FromEnv builds a Config from CONTENTSCHEMA_* environment variables so main stays lean.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:        os.Getenv("CONTENTSCHEMA_ADDR"),
		DatabaseURL: os.Getenv("CONTENTSCHEMA_DATABASE_URL"),
		RedisURL:    os.Getenv("CONTENTSCHEMA_REDIS_URL"),
		CacheTTL:    defaultCacheTTL,
		Lang:        os.Getenv("CONTENTSCHEMA_LANG"),
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if v := os.Getenv("CONTENTSCHEMA_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("CONTENTSCHEMA_CACHE_TTL: %w", err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("CONTENTSCHEMA_CACHE_TTL: must be positive, got %s", ttl)
		}
		cfg.CacheTTL = ttl
	}
	switch cfg.Lang {
	case "en", "ja":
	default:
		return Config{}, fmt.Errorf("CONTENTSCHEMA_LANG: unsupported language %q", cfg.Lang)
	}
	return cfg, nil
}

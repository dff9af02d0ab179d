package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NOTE_STORE", StoreMemory)
	t.Setenv("PORT", "")
	t.Setenv("CACHE_BACKEND", CacheNone)
	t.Setenv("CACHE_TTL_SECONDS", "")
	t.Setenv("EVENT_TOPIC", "note_events")
	t.Setenv("OTEL_ENABLED", "")

	cfg := Load()

	assert.Equal(t, StoreMemory, cfg.Database.Store)
	assert.Equal(t, DefaultPort, cfg.App.Port)
	assert.Equal(t, CacheNone, cfg.Cache.Backend)
	assert.Equal(t, 300*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "note_events", cfg.Events.Topic)
	assert.False(t, cfg.Tracing.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DatabaseStoresRequirePort(t *testing.T) {
	t.Setenv("NOTE_STORE", "MONGO")
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")

	cfg := Load()
	assert.Equal(t, StoreMongo, cfg.Database.Store)
	assert.Empty(t, cfg.App.Port)

	err := cfg.Validate()
	assert.ErrorContains(t, err, "PORT is required")
	assert.ErrorContains(t, err, "MONGODB_URI is required")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("NOTE_STORE", StorePostgres)
	t.Setenv("PORT", "8080")
	t.Setenv("DB_CONNECTION_STRING", "host=localhost user=notes dbname=notes sslmode=disable")
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("SEED_NOTES", "true")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.App.SeedNotes)
	assert.True(t, cfg.Tracing.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "unknown store", mutate: func(c *Config) { c.Database.Store = "sqlite" }, wantErr: `unknown NOTE_STORE "sqlite"`},
		{name: "non numeric port", mutate: func(c *Config) { c.App.Port = "http" }, wantErr: `PORT must be a number`},
		{name: "redis cache without url", mutate: func(c *Config) { c.Cache.Backend = CacheRedis }, wantErr: "REDIS_URL is required"},
		{name: "unknown cache", mutate: func(c *Config) { c.Cache.Backend = "memcached" }, wantErr: `unknown CACHE_BACKEND "memcached"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				App:      AppConfig{Port: DefaultPort},
				Database: DatabaseConfig{Store: StoreMemory},
				Cache:    CacheConfig{Backend: CacheNone},
			}
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

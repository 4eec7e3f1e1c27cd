package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MemoryDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.Database.Driver)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DB_PRIMARY_DSN", "postgres://localhost/notes")
	t.Setenv("DB_REPLICA_DSNS", "postgres://r1/notes, postgres://r2/notes,")
	t.Setenv("TOKEN_TTL", "0")
	t.Setenv("PORT", "8088")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.Database.Driver)
	assert.Equal(t, []string{"postgres://r1/notes", "postgres://r2/notes"}, cfg.Database.ReplicaDSNs)
	assert.Zero(t, cfg.Auth.TokenTTL)
	assert.Equal(t, "8088", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("BCRYPT_COST", "not-a-number")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"memory ok", func(c *Config) { c.Database.Driver = StoreDriverMemory }, false},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = StoreDriverPostgres }, true},
		{"postgres with dsn", func(c *Config) {
			c.Database.Driver = StoreDriverPostgres
			c.Database.PrimaryDSN = "postgres://localhost/notes"
		}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mongo" }, true},
		{"negative ttl", func(c *Config) {
			c.Database.Driver = StoreDriverMemory
			c.Auth.TokenTTL = -time.Second
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

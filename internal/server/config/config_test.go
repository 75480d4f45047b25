package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ExpandsEnvAndOverridesDefaults(t *testing.T) {
	t.Setenv("LIGHTNOTES_TEST_SECRET", "0123456789abcdef0123")

	path := writeConfig(t, `
http:
  addr: ":9090"
  cors_origins: ["https://app.example"]
  rate_window: 30s
  trust_proxy: true
auth:
  secret: ${LIGHTNOTES_TEST_SECRET}
  token_ttl: 720h
storage:
  driver: memory
log:
  level: debug
`)

	cfg := NewDefaultConfig()
	assert.False(t, cfg.HTTP.TrustProxy, "proxy headers are ignored by default")
	require.NoError(t, Load(path, cfg))

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://app.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RateWindow)
	assert.Equal(t, 600, cfg.HTTP.RateLimit, "default kept")
	assert.True(t, cfg.HTTP.TrustProxy)
	assert.Equal(t, "0123456789abcdef0123", cfg.Auth.Secret)
	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := NewDefaultConfig()
		assert.Error(t, Load(filepath.Join(t.TempDir(), "nope.yaml"), cfg))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		cfg := NewDefaultConfig()
		assert.Error(t, Load(writeConfig(t, "http: [unclosed"), cfg))
	})

	t.Run("validation", func(t *testing.T) {
		cfg := NewDefaultConfig()
		err := Load(writeConfig(t, "auth:\n  secret: short\n"), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auth")
	})
}

func TestLoadOrDefault_MissingFileUsesDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.Secret = "0123456789abcdef"

	require.NoError(t, LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"), cfg))
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := NewDefaultConfig()
		cfg.Auth.Secret = "0123456789abcdef"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults with secret", mutate: func(c *Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.Auth.Secret = "" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "postgres" }, wantErr: true},
		{name: "sqlite without path", mutate: func(c *Config) { c.Storage.SQLite.Path = "" }, wantErr: true},
		{name: "s3 without bucket", mutate: func(c *Config) {
			c.Storage.Driver = DriverS3
			c.Storage.S3.Region = "auto"
		}, wantErr: true},
		{name: "s3 complete", mutate: func(c *Config) {
			c.Storage.Driver = DriverS3
			c.Storage.S3 = S3Config{Bucket: "notes", Region: "auto", AccessKey: "a", SecretKey: "b"}
		}},
		{name: "s3 access key without secret", mutate: func(c *Config) {
			c.Storage.Driver = DriverS3
			c.Storage.S3 = S3Config{Bucket: "notes", Region: "auto", AccessKey: "a"}
		}, wantErr: true},
		{name: "memory needs nothing", mutate: func(c *Config) {
			c.Storage = StorageConfig{Driver: DriverMemory}
		}},
		{name: "rate limit without window", mutate: func(c *Config) { c.HTTP.RateWindow = 0 }, wantErr: true},
		{name: "rate limit disabled", mutate: func(c *Config) {
			c.HTTP.RateLimit = 0
			c.HTTP.RateWindow = 0
		}},
		{name: "empty addr", mutate: func(c *Config) { c.HTTP.Addr = "" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ontograph/pkg/cache"
	"github.com/matzehuels/ontograph/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ontograph.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Addr = %q, want :8000", cfg.Server.Addr)
	}
	wantBackend := cache.BackendFile
	if cfg.Cache.Dir == "" {
		// No user cache dir without $HOME.
		wantBackend = cache.BackendNone
	}
	if cfg.Cache.Backend != wantBackend {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, wantBackend)
	}
	if got := cfg.Server.MaxUploadBytes(); got != 32<<20 {
		t.Errorf("MaxUploadBytes() = %d", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9090"
read_timeout = "5s"

[cache]
backend = "redis"
redis_url = "redis://localhost:6379/1"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}
	if cfg.Cache.Prefix != "ontograph:" {
		t.Errorf("Prefix = %q, want default kept", cfg.Cache.Prefix)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}

	opts := cfg.CacheOptions()
	if opts.Backend != cache.BackendRedis || opts.RedisURL != "redis://localhost:6379/1" {
		t.Errorf("CacheOptions() = %+v", opts)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file error = %v, want NOT_FOUND", err)
	}

	bad := writeConfig(t, "[server\naddr=")
	if _, err := Load(bad); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("malformed file error = %v, want INVALID_CONFIG", err)
	}

	unknown := writeConfig(t, "[server]\nadress = \":1\"\n")
	if _, err := Load(unknown); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("unknown key error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.Server.Addr != Default().Server.Addr {
		t.Error("empty path should return defaults")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAddr:         ":7000",
		EnvCacheBackend: "none",
		EnvRedisURL:     "redis://cache:6379",
		EnvLogLevel:     "",
	}
	cfg := Default()
	cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	if cfg.Server.Addr != ":7000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("Backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.RedisURL != "redis://cache:6379" {
		t.Errorf("RedisURL = %q", cfg.Cache.RedisURL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("empty env value should not override, Level = %q", cfg.Log.Level)
	}
}

func TestApplyEnvFromProcess(t *testing.T) {
	t.Setenv(EnvStaticDir, "/srv/www")
	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Server.StaticDir != "/srv/www" {
		t.Errorf("StaticDir = %q", cfg.Server.StaticDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero upload", func(c *Config) { c.Server.MaxUploadMB = 0 }},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"file without dir", func(c *Config) { c.Cache.Backend = "file"; c.Cache.Dir = "" }},
		{"redis without url", func(c *Config) { c.Cache.Backend = "redis" }},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -1 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Cache.Dir = "/tmp/ontograph"
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

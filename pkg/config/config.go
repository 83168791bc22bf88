// Package config loads ontograph settings from a TOML file and the
// environment.
//
// Precedence, lowest to highest: built-in defaults, the TOML file,
// ONTOGRAPH_* environment variables, command-line flags (applied by the CLI).
//
//	[server]
//	addr = ":8000"
//	static_dir = "./frontend"
//	max_upload_mb = 32
//	read_timeout = "15s"
//	write_timeout = "30s"
//	cors_origins = ["*"]
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	prefix = "ontograph:"
//	ttl = "168h"
//
//	[log]
//	level = "debug"
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/ontograph/pkg/cache"
	"github.com/matzehuels/ontograph/pkg/errors"
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	StaticDir    string        `toml:"static_dir"`
	MaxUploadMB  int64         `toml:"max_upload_mb"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	CORSOrigins  []string      `toml:"cors_origins"`
}

// CacheConfig selects the parse cache backend.
type CacheConfig struct {
	Backend  string        `toml:"backend"`
	Dir      string        `toml:"dir"`
	TTL      time.Duration `toml:"ttl"`
	RedisURL string        `toml:"redis_url"`
	Prefix   string        `toml:"prefix"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Environment variables read by ApplyEnv.
const (
	EnvAddr         = "ONTOGRAPH_ADDR"
	EnvStaticDir    = "ONTOGRAPH_STATIC_DIR"
	EnvCacheBackend = "ONTOGRAPH_CACHE_BACKEND"
	EnvCacheDir     = "ONTOGRAPH_CACHE_DIR"
	EnvRedisURL     = "ONTOGRAPH_REDIS_URL"
	EnvLogLevel     = "ONTOGRAPH_LOG_LEVEL"
)

// Default returns the built-in configuration. Without a user cache
// directory the cache is disabled.
func Default() Config {
	backend := cache.BackendFile
	dir, err := cache.DefaultDir()
	if err != nil {
		backend, dir = cache.BackendNone, ""
	}
	return Config{
		Server: ServerConfig{
			Addr:         ":8000",
			MaxUploadMB:  32,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		Cache: CacheConfig{
			Backend: backend,
			Dir:     dir,
			TTL:     7 * 24 * time.Hour,
			Prefix:  "ontograph:",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults. Unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, errors.New(errors.ErrCodeNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides settings from ONTOGRAPH_* environment variables.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	set := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	set(EnvAddr, &c.Server.Addr)
	set(EnvStaticDir, &c.Server.StaticDir)
	set(EnvCacheBackend, &c.Cache.Backend)
	set(EnvCacheDir, &c.Cache.Dir)
	set(EnvRedisURL, &c.Cache.RedisURL)
	set(EnvLogLevel, &c.Log.Level)
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must be set")
	}
	if c.Server.MaxUploadMB <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_upload_mb must be positive")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server timeouts cannot be negative")
	}

	switch c.Cache.Backend {
	case "", cache.BackendNone:
	case cache.BackendFile:
		if c.Cache.Dir == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.dir must be set for the file backend")
		}
	case cache.BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url must be set for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be none, file or redis, got %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl cannot be negative")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	return nil
}

// CacheOptions converts the cache section for cache.New.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:  c.Cache.Backend,
		Dir:      c.Cache.Dir,
		RedisURL: c.Cache.RedisURL,
		Prefix:   c.Cache.Prefix,
	}
}

// MaxUploadBytes returns the upload limit in bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

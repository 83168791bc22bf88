// Package cache stores parsed graphs and rendered artifacts between runs.
//
// Backends:
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one file per entry below a directory, for CLI usage
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//
// Keys are derived by a [Keyer] from content hashes, so the same document
// always maps to the same entry regardless of its filename:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.GraphKey(cache.Hash(data))
//	if raw, ok, _ := c.Get(ctx, key); ok {
//	    // reuse the cached graph
//	}
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// A miss is reported as ok == false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by [New].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Backend  string
	Dir      string
	RedisURL string
	Prefix   string
}

// New opens the backend named by opts.Backend. An empty backend disables
// caching.
func New(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file cache: directory not set")
		}
		c, err := NewFileCache(opts.Dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		c, err := DialRedis(ctx, opts.RedisURL, opts.Prefix)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}

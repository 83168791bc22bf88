package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ontograph/pkg/cache"
	"github.com/matzehuels/ontograph/pkg/graph"
	"github.com/matzehuels/ontograph/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeGraph  = "graph"
	keyTypeRender = "render"
)

// Runner executes pipeline stages with caching. It holds no per-run state,
// so one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// GraphTTL overrides TTLGraph for parsed graphs when positive.
	GraphTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load parses document bytes into a graph, reusing a cached graph for
// identical documents.
func (r *Runner) Load(ctx context.Context, source string, data []byte, opts Options) (*Result, error) {
	logger := r.logger(opts)
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnParseStart(ctx, source)

	res := &Result{Source: source, DocHash: cache.Hash(data)}
	key := r.Keyer.GraphKey(res.DocHash)

	g, hit := r.cachedGraph(ctx, key, opts.Refresh)
	if !hit {
		var err error
		g, err = Parse(data)
		if err != nil {
			hooks.OnParseComplete(ctx, source, 0, 0, time.Since(start), err)
			return nil, fmt.Errorf("parse %s: %w", source, err)
		}
	}

	encoded, err := graph.MarshalGraph(g)
	if err != nil {
		return nil, fmt.Errorf("marshal graph: %w", err)
	}
	if !hit {
		if err := r.Cache.Set(ctx, key, encoded, r.graphTTL()); err != nil {
			logger.Warn("cache write failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeGraph, len(encoded))
		}
	}

	res.Graph = g
	res.GraphHash = cache.Hash(encoded)
	res.CacheHit = hit
	res.Duplicates = g.Duplicates()
	res.Duration = time.Since(start)
	hooks.OnParseComplete(ctx, source, g.NodeCount(), g.EdgeCount(), res.Duration, nil)

	if len(res.Duplicates) > 0 {
		logger.Warn("duplicate node ids", "source", source, "ids", res.Duplicates)
	}
	logger.Info("parsed ontology",
		"source", source,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"cached", hit,
		"duration", res.Duration)

	return res, nil
}

func (r *Runner) cachedGraph(ctx context.Context, key string, refresh bool) (graph.Graph, bool) {
	if refresh {
		return graph.Graph{}, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeGraph)
		return graph.Graph{}, false
	}
	g, err := graph.UnmarshalGraph(data)
	if err != nil {
		r.Logger.Debug("discarding unreadable cache entry", "key", key, "err", err)
		observability.Cache().OnCacheMiss(ctx, keyTypeGraph)
		return graph.Graph{}, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeGraph)
	return g, true
}

// Render produces the requested artifacts, serving each format from the
// cache when possible.
func (r *Runner) Render(ctx context.Context, g graph.Graph, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	encoded, err := graph.MarshalGraph(g)
	if err != nil {
		return nil, fmt.Errorf("marshal graph: %w", err)
	}
	graphHash := cache.Hash(encoded)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.RenderKey(graphHash, opts.renderVariant(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, keyTypeRender)
				artifacts[format] = data
				continue
			}
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeRender)
		missing = append(missing, format)
	}

	if len(missing) > 0 {
		sub := opts
		sub.Formats = missing
		rendered, err := Render(ctx, g, sub)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, err
		}
		for format, data := range rendered {
			artifacts[format] = data
			key := r.Keyer.RenderKey(graphHash, opts.renderVariant(format))
			if err := r.Cache.Set(ctx, key, data, TTLArtifact); err != nil {
				logger.Warn("cache write failed", "key", key, "err", err)
				continue
			}
			observability.Cache().OnCacheSet(ctx, keyTypeRender, len(data))
		}
	}

	d := time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, d, nil)
	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(opts.Formats)-len(missing),
		"duration", d)
	return artifacts, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) graphTTL() time.Duration {
	if r.GraphTTL > 0 {
		return r.GraphTTL
	}
	return TTLGraph
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

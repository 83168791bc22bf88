package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusHooks implements every hook interface on top of Prometheus
// collectors.
type PrometheusHooks struct {
	parses        *prometheus.CounterVec
	parseDuration prometheus.Histogram
	graphNodes    prometheus.Gauge
	graphEdges    prometheus.Gauge
	renders       *prometheus.CounterVec
	cacheOps      *prometheus.CounterVec
	cacheBytes    *prometheus.CounterVec
	requests      *prometheus.CounterVec
	reqDuration   *prometheus.HistogramVec
	inFlight      prometheus.Gauge
}

// NewPrometheusHooks creates the collectors and registers them with reg.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	h := &PrometheusHooks{
		parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ontograph_parses_total",
				Help: "Ontology documents parsed, by outcome",
			},
			[]string{"result"},
		),
		parseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ontograph_parse_duration_seconds",
				Help:    "Time spent parsing ontology documents",
				Buckets: prometheus.DefBuckets,
			},
		),
		graphNodes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ontograph_graph_nodes",
				Help: "Node count of the most recently parsed graph",
			},
		),
		graphEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ontograph_graph_edges",
				Help: "Edge count of the most recently parsed graph",
			},
		),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ontograph_renders_total",
				Help: "Render runs, by outcome",
			},
			[]string{"result"},
		),
		cacheOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ontograph_cache_operations_total",
				Help: "Cache lookups and writes, by key type and operation",
			},
			[]string{"key_type", "op"},
		),
		cacheBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ontograph_cache_written_bytes_total",
				Help: "Bytes written to the cache, by key type",
			},
			[]string{"key_type"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ontograph_http_requests_total",
				Help: "HTTP requests served, by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		reqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ontograph_http_request_duration_seconds",
				Help:    "HTTP request latency, by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ontograph_http_in_flight_requests",
				Help: "HTTP requests currently being served",
			},
		),
	}

	reg.MustRegister(
		h.parses, h.parseDuration, h.graphNodes, h.graphEdges, h.renders,
		h.cacheOps, h.cacheBytes, h.requests, h.reqDuration, h.inFlight,
	)
	return h
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (h *PrometheusHooks) OnParseStart(context.Context, string) {}

func (h *PrometheusHooks) OnParseComplete(_ context.Context, _ string, nodes, edges int, d time.Duration, err error) {
	h.parses.WithLabelValues(result(err)).Inc()
	h.parseDuration.Observe(d.Seconds())
	if err == nil {
		h.graphNodes.Set(float64(nodes))
		h.graphEdges.Set(float64(edges))
	}
}

func (h *PrometheusHooks) OnRenderStart(context.Context, []string) {}

func (h *PrometheusHooks) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	h.renders.WithLabelValues(result(err)).Inc()
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheOps.WithLabelValues(keyType, "set").Inc()
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string) {
	h.inFlight.Inc()
}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.inFlight.Dec()
	h.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.reqDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*PrometheusHooks)(nil)
	_ CacheHooks    = (*PrometheusHooks)(nil)
	_ HTTPHooks     = (*PrometheusHooks)(nil)
)

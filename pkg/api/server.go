// Package api serves ontology graphs over HTTP.
//
// A client uploads an ontology document, which becomes the current graph;
// every other endpoint queries that graph:
//
//	POST /api/upload        multipart "file": load a document
//	GET  /api/graph         the current graph
//	GET  /api/categories    category keys, labels and colors
//	GET  /api/node/{id}     one node with its incoming and outgoing edges
//	GET  /api/search?q=     nodes whose label or path contains q
//	POST /api/filter        {"categories": [...]}: the graph restricted to categories
//	GET  /api/stats         node and edge counts
//	GET  /api/render/{fmt}  the graph as json, dot, svg or png
//	GET  /api/health        liveness and whether a graph is loaded
//	GET  /metrics           Prometheus metrics
//
// Errors are returned as {"error": "<message>"} with a status derived from
// the error code.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/ontograph/pkg/config"
	"github.com/matzehuels/ontograph/pkg/pipeline"
	"github.com/matzehuels/ontograph/pkg/store"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Config config.ServerConfig
	Store  *store.Store
	Runner *pipeline.Runner
	Logger *log.Logger

	// Gatherer backs /metrics. Defaults to the Prometheus default registry.
	Gatherer prometheus.Gatherer
}

// Server is the HTTP API.
type Server struct {
	cfg    config.ServerConfig
	store  *store.Store
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New builds a server and its routes. Nil dependencies get defaults.
func New(opts Options) *Server {
	if opts.Store == nil {
		opts.Store = store.New()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner(nil, nil, opts.Logger)
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Config.MaxUploadMB <= 0 {
		opts.Config.MaxUploadMB = config.Default().Server.MaxUploadMB
	}

	s := &Server{
		cfg:    opts.Config,
		store:  opts.Store,
		runner: opts.Runner,
		logger: opts.Logger,
	}
	s.router = s.routes(opts.Gatherer)
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

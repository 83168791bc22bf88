package cli

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ontograph/pkg/api"
	"github.com/matzehuels/ontograph/pkg/observability"
	"github.com/matzehuels/ontograph/pkg/store"
)

// serveOpts holds flag overrides for the serve command.
type serveOpts struct {
	addr      string
	staticDir string
	noCache   bool
}

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ontology graph API over HTTP",
		Long: `Serve the ontology graph API over HTTP.

Clients upload a document to /api/upload and query the resulting graph
through the other /api endpoints. Prometheus metrics are exposed at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&opts.staticDir, "static", "", "directory with a frontend to serve at /")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the parse cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	cfg := c.config.Server
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	if opts.staticDir != "" {
		cfg.StaticDir = opts.staticDir
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	hooks := observability.NewPrometheusHooks(reg)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := api.New(api.Options{
		Config:   cfg,
		Store:    store.New(),
		Runner:   runner,
		Logger:   c.Logger,
		Gatherer: reg,
	})

	printInfo("Serving on %s", cfg.Addr)
	printDetail("cache: %s", c.config.Cache.Backend)
	return srv.ListenAndServe(ctx)
}

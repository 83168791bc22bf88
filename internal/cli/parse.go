package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ontograph/pkg/graph"
	"github.com/matzehuels/ontograph/pkg/pipeline"
)

// parseOpts holds the flags for the parse command.
type parseOpts struct {
	output  string // output file path (stdout if empty)
	noCache bool   // skip the parse cache entirely
	refresh bool   // ignore cached graphs but write fresh ones back
}

// parseCommand creates the parse command, which writes the graph JSON for an
// ontology document.
func (c *CLI) parseCommand() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse an ontology document into graph JSON",
		Long: `Parse an ontology document into graph JSON.

The graph is written to stdout unless --output is given. Use "-" to read
the document from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the parse cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached graphs")

	return cmd
}

func (c *CLI) runParse(ctx context.Context, path string, opts parseOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := load(ctx, runner, path, opts.refresh)
	if err != nil {
		return err
	}

	if opts.output == "" {
		return graph.WriteGraph(res.Graph, os.Stdout)
	}
	if err := graph.WriteGraphFile(res.Graph, opts.output); err != nil {
		return err
	}

	printSuccess("Parsed %s", res.Source)
	printStats(res.Graph.NodeCount(), res.Graph.EdgeCount(), res.CacheHit)
	printFile(opts.output)
	printNewline()
	printNextStep("Render it", fmt.Sprintf("%s render %s -f svg", appName, path))
	return nil
}

// load reads a document ("-" for stdin) and parses it through runner.
func load(ctx context.Context, runner *pipeline.Runner, path string, refresh bool) (*pipeline.Result, error) {
	data, err := pipeline.ReadSource(path)
	if err != nil {
		return nil, err
	}

	source := path
	if path == "-" {
		source = "stdin"
	}
	return runner.Load(ctx, source, data, pipeline.Options{Refresh: refresh, Logger: loggerFromContext(ctx)})
}

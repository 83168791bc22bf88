package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ontograph/pkg/pipeline"
)

// renderOpts holds the flags for the render command.
type renderOpts struct {
	output        string   // output file (single format) or base path
	formats       []string // json, dot, svg, png
	categories    []string // restrict to these categories plus the root
	detailed      bool     // category and type lines in labels
	hideHierarchy bool     // drop hierarchical edges
	noCache       bool
	refresh       bool
}

// renderCommand creates the render command for node-link diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr, categoriesStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Render an ontology as a node-link diagram",
		Long: `Render an ontology as a node-link diagram.

Nodes are filled with their category color. Hierarchical edges are grey,
relational edges dashed purple and causal edges bold red.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			opts.categories = splitList(categoriesStr)
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().StringVarP(&categoriesStr, "categories", "c", "", "only render these categories (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show category and node type in labels")
	cmd.Flags().BoolVar(&opts.hideHierarchy, "hide-hierarchy", false, "omit hierarchical edges")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	popts := pipeline.Options{
		Formats:       opts.formats,
		Categories:    opts.categories,
		Detailed:      opts.detailed,
		HideHierarchy: opts.hideHierarchy,
		Refresh:       opts.refresh,
		Logger:        loggerFromContext(ctx),
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := load(ctx, runner, path, opts.refresh)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering "+strings.Join(popts.Formats, ", ")+"...")
	spinner.Start()
	artifacts, err := runner.Render(ctx, res.Graph, popts)
	spinner.Stop()
	if err != nil {
		return err
	}

	paths := outputPaths(path, opts.output, popts.Formats)
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	printSuccess("Rendered %s", res.Source)
	printStats(res.Graph.NodeCount(), res.Graph.EdgeCount(), res.CacheHit)
	for _, f := range formats {
		if err := os.WriteFile(paths[f], artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths[f], err)
		}
		printFile(paths[f])
	}
	return nil
}

// outputPaths maps each format to its output file. A single format with an
// explicit output uses it verbatim; otherwise the output (or the input name
// without its extension) is a base path and each format adds its extension.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		if input == "-" {
			base = "ontology"
		}
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	for _, f := range formats {
		ext := f
		if f == "json" {
			ext = "graph.json"
		}
		paths[f] = base + "." + ext
	}
	return paths
}

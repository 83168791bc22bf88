package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/ontograph/pkg/graph"
	"github.com/matzehuels/ontograph/pkg/render"
	"github.com/matzehuels/ontograph/pkg/render/nodelink"
)

// Render produces one artifact per requested format without caching.
// The graph is filtered by opts.Categories first.
func Render(ctx context.Context, g graph.Graph, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	g = g.Filter(opts.Categories)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var dot string
	for _, format := range opts.Formats {
		if format == render.FormatJSON {
			data, err := graph.MarshalGraph(g)
			if err != nil {
				return nil, fmt.Errorf("marshal graph: %w", err)
			}
			artifacts[format] = data
			continue
		}

		if dot == "" {
			dot = nodelink.ToDOT(g, nodelink.Options{
				Detailed:      opts.Detailed,
				HideHierarchy: opts.HideHierarchy,
			})
		}
		data, err := nodelink.Render(ctx, dot, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderVariant identifies diagram options in artifact cache keys.
func (o Options) renderVariant(format string) string {
	return fmt.Sprintf("%s|detailed=%t|hide=%t|cats=%v", format, o.Detailed, o.HideHierarchy, o.Categories)
}

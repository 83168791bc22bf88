// Package nodelink renders ontology graphs as Graphviz node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT, then render it:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.Render(ctx, dot, render.FormatSVG)
//
// # Styling
//
// Nodes are filled with their category color and sized by role: the root is
// drawn as a double octagon, composite classes and instances as rounded
// boxes, leaves as plain ellipses. Edges follow their class:
//
//   - hierarchical: thin grey arrows
//   - relational: dashed purple arrows labeled with the relation type
//   - causal: bold red arrows
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz], which embeds Graphviz
// as WebAssembly, so no system Graphviz installation is needed.
package nodelink

package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ontograph/pkg/graph"
	"github.com/matzehuels/ontograph/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the category and node type below each label.
	Detailed bool

	// HideHierarchy omits hierarchical edges so only relational and causal
	// edges are drawn.
	HideHierarchy bool

	// RankDir is the Graphviz rank direction. Defaults to "LR".
	RankDir string
}

// ToDOT converts a graph to Graphviz DOT source. Node and edge order
// follow the graph, so the output is deterministic.
func ToDOT(g graph.Graph, opts Options) string {
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fontname=\"Helvetica\", fontsize=12, fontcolor=white, penwidth=0];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10, arrowsize=0.7];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	// Duplicate ids are declared once, with the attributes of the last
	// occurrence.
	last := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		last[n.Data.ID] = i
	}
	for i, n := range g.Nodes {
		if last[n.Data.ID] != i {
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Data.ID, strings.Join(nodeAttrs(n.Data, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if opts.HideHierarchy && e.Classes == graph.EdgeHierarchical {
			continue
		}
		attrs := edgeAttrs(e)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.Data.Source, e.Data.Target)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Data.Source, e.Data.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n graph.NodeData, detailed bool) []string {
	label := n.Label
	if detailed {
		label += "\n" + n.Category + " · " + n.NodeType
	}
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", n.Color),
	}

	switch {
	case n.NodeType == graph.NodeTypeRoot:
		attrs = append(attrs, "shape=doubleoctagon", "fontsize=16")
	case n.Size >= graph.SizeComposite:
		attrs = append(attrs, "shape=box", "style=\"rounded,filled\"")
	default:
		attrs = append(attrs, "shape=ellipse")
	}
	return attrs
}

func edgeAttrs(e graph.Edge) []string {
	switch e.Classes {
	case graph.EdgeHierarchical:
		return []string{"color=\"#94a3b8\""}
	case graph.EdgeCausal:
		attrs := []string{"color=\"#ef4444\"", "penwidth=2"}
		if l := e.Data.Label(); l != "" {
			attrs = append(attrs, fmt.Sprintf("label=%q", l))
		}
		return attrs
	default:
		attrs := []string{"color=\"#8b5cf6\"", "style=dashed"}
		if l := e.Data.Label(); l != "" {
			attrs = append(attrs, fmt.Sprintf("label=%q", l))
		}
		return attrs
	}
}

// Render renders DOT source in the given format. The DOT format returns the
// source unchanged.
func Render(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case render.FormatDOT:
		return []byte(dot), nil
	case render.FormatSVG:
		out, err := renderGraphviz(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return normalizeViewBox(out), nil
	case render.FormatPNG:
		return renderGraphviz(ctx, dot, graphviz.PNG)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales to its
// container instead of using Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

package graph

import (
	"slices"
	"strings"
)

// Stats summarizes a graph.
type Stats struct {
	TotalNodes int            `json:"total_nodes"`
	TotalEdges int            `json:"total_edges"`
	Categories map[string]int `json:"categories"`
	EdgeTypes  map[string]int `json:"edge_types"`
}

// FindNode returns the first node with the given id.
func (g Graph) FindNode(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.Data.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Incoming returns the edges whose target is id.
func (g Graph) Incoming(id string) []Edge {
	out := []Edge{}
	for _, e := range g.Edges {
		if e.Data.Target == id {
			out = append(out, e)
		}
	}
	return out
}

// Outgoing returns the edges whose source is id.
func (g Graph) Outgoing(id string) []Edge {
	out := []Edge{}
	for _, e := range g.Edges {
		if e.Data.Source == id {
			out = append(out, e)
		}
	}
	return out
}

// Search returns nodes whose label or path contains q, case-insensitively.
// An empty query matches nothing.
func (g Graph) Search(q string) []Node {
	out := []Node{}
	q = strings.ToLower(q)
	if q == "" {
		return out
	}
	for _, n := range g.Nodes {
		if strings.Contains(strings.ToLower(n.Data.Label), q) ||
			strings.Contains(strings.ToLower(n.Data.Path), q) {
			out = append(out, n)
		}
	}
	return out
}

// Filter keeps nodes in the given categories plus any root-category node,
// and the edges whose endpoints both survive. An empty category list
// returns the graph unchanged.
func (g Graph) Filter(categories []string) Graph {
	if len(categories) == 0 {
		return g
	}

	out := Graph{Nodes: []Node{}, Edges: []Edge{}}
	visible := make(map[string]bool)
	for _, n := range g.Nodes {
		if n.Data.Category == CategoryRoot || slices.Contains(categories, n.Data.Category) {
			out.Nodes = append(out.Nodes, n)
			visible[n.Data.ID] = true
		}
	}
	for _, e := range g.Edges {
		if visible[e.Data.Source] && visible[e.Data.Target] {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}

// ComputeStats counts nodes per category and edges per type.
func (g Graph) ComputeStats() Stats {
	s := Stats{
		TotalNodes: len(g.Nodes),
		TotalEdges: len(g.Edges),
		Categories: make(map[string]int),
		EdgeTypes:  make(map[string]int),
	}
	for _, n := range g.Nodes {
		s.Categories[n.Data.Category]++
	}
	for _, e := range g.Edges {
		s.EdgeTypes[e.Data.Type]++
	}
	return s
}

// Duplicates returns node ids that occur more than once, in order of their
// second occurrence.
func (g Graph) Duplicates() []string {
	seen := make(map[string]int, len(g.Nodes))
	var dups []string
	for _, n := range g.Nodes {
		seen[n.Data.ID]++
		if seen[n.Data.ID] == 2 {
			dups = append(dups, n.Data.ID)
		}
	}
	return dups
}

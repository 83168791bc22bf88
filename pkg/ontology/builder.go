package ontology

import "github.com/matzehuels/ontograph/pkg/graph"

// builder accumulates the nodes and edges of a single parse call.
type builder struct {
	nodes []graph.Node
	edges []graph.Edge
	ids   map[string]bool
}

func newBuilder() *builder {
	return &builder{
		nodes: []graph.Node{},
		edges: []graph.Edge{},
		ids:   make(map[string]bool),
	}
}

// addNode appends a node. Duplicate ids are kept; see graph.Duplicates.
func (b *builder) addNode(d graph.NodeData) {
	d.Color = ColorOf(d.Category)
	if d.Path == "" {
		d.Path = d.ID
	}
	b.nodes = append(b.nodes, graph.Node{Data: d})
	b.ids[d.ID] = true
}

func (b *builder) hasNode(id string) bool {
	return b.ids[id]
}

// addEdge appends an edge when both endpoints exist and reports whether it
// did. Callers resolve endpoints before calling, so a false return only
// happens for hierarchical edges whose parent was never created.
func (b *builder) addEdge(d graph.EdgeData, class string) bool {
	if !b.hasNode(d.Source) || !b.hasNode(d.Target) {
		return false
	}
	b.edges = append(b.edges, graph.Edge{Data: d, Classes: class})
	return true
}

func (b *builder) result() graph.Graph {
	return graph.Graph{Nodes: b.nodes, Edges: b.edges}
}

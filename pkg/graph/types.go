package graph

import (
	"encoding/json"

	"github.com/matzehuels/ontograph/pkg/document"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Node types.
const (
	NodeTypeRoot       = "root"
	NodeTypeDefinition = "definition" // class hierarchy (TBox)
	NodeTypeInstance   = "instance"   // instance records (ABox)
)

// Edge types and the matching style classes.
const (
	EdgeHierarchical = "hierarchical"
	EdgeRelational   = "relational"
	EdgeCausal       = "causal"
)

// RootNodeID is the id of the synthesized root node.
const RootNodeID = "root"

// CategoryRoot is the category of the root node. Filters always keep it.
const CategoryRoot = "root"

// Node sizes used as rendering hints.
const (
	SizeRoot      = 60
	SizeComposite = 40
	SizeLeaf      = 30
)

// =============================================================================
// Graph
// =============================================================================

// Graph is the canonical serialization format for ontology graphs.
// Nodes and edges keep creation order.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeCount returns the number of nodes.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// =============================================================================
// Node
// =============================================================================

// Node wraps node attributes under "data".
type Node struct {
	Data NodeData `json:"data"`
}

// NodeData holds the attributes of one concept, class or instance.
type NodeData struct {
	ID         string           `json:"id"`
	Label      string           `json:"label"`
	Category   string           `json:"category"`
	Color      string           `json:"color"`
	Size       int              `json:"size"`
	Path       string           `json:"path"`
	Properties *document.Object `json:"properties"`
	NodeType   string           `json:"node_type"`
}

// =============================================================================
// Edge
// =============================================================================

// Edge wraps edge attributes under "data" plus the style class.
type Edge struct {
	Data    EdgeData `json:"data"`
	Classes string   `json:"classes"`
}

// EdgeData holds the attributes of a directed relation.
// Extra carries pass-through attributes; on the wire they sit next to the
// fixed fields inside "data".
type EdgeData struct {
	ID           string
	Source       string
	Target       string
	Type         string
	RelationType string
	Extra        *document.Object
}

var edgeFixedKeys = map[string]bool{
	"id":           true,
	"source":       true,
	"target":       true,
	"type":         true,
	"relationType": true,
}

// MarshalJSON flattens Extra into the data object.
func (d EdgeData) MarshalJSON() ([]byte, error) {
	out := document.NewObject()
	out.Set("id", d.ID)
	out.Set("source", d.Source)
	out.Set("target", d.Target)
	out.Set("type", d.Type)
	if d.RelationType != "" {
		out.Set("relationType", d.RelationType)
	}
	d.Extra.Each(func(k string, v document.Value) bool {
		if !edgeFixedKeys[k] {
			out.Set(k, v)
		}
		return true
	})
	return out.MarshalJSON()
}

// UnmarshalJSON splits the data object into fixed fields and Extra.
func (d *EdgeData) UnmarshalJSON(data []byte) error {
	obj, err := document.DecodeObject(data)
	if err != nil {
		return err
	}
	*d = EdgeData{
		ID:           obj.String("id"),
		Source:       obj.String("source"),
		Target:       obj.String("target"),
		Type:         obj.String("type"),
		RelationType: obj.String("relationType"),
	}
	obj.Each(func(k string, v document.Value) bool {
		if edgeFixedKeys[k] {
			return true
		}
		if d.Extra == nil {
			d.Extra = document.NewObject()
		}
		d.Extra.Set(k, v)
		return true
	})
	return nil
}

// Label returns the display label of an edge: the relation type when set,
// otherwise a "label" pass-through attribute.
func (d EdgeData) Label() string {
	if d.RelationType != "" {
		return d.RelationType
	}
	return d.Extra.String("label")
}

var (
	_ json.Marshaler   = EdgeData{}
	_ json.Unmarshaler = (*EdgeData)(nil)
)

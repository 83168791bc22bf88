package ontology

import (
	"github.com/matzehuels/ontograph/pkg/document"
	"github.com/matzehuels/ontograph/pkg/graph"
)

// isComplex reports whether v is an object holding at least one object
// value. Arrays never count, and neither do objects of scalars: the test
// looks exactly one level down.
func isComplex(v document.Value) bool {
	obj, ok := document.AsObject(v)
	if !ok {
		return false
	}
	complex := false
	obj.Each(func(_ string, child document.Value) bool {
		if _, ok := document.AsObject(child); ok {
			complex = true
			return false
		}
		return true
	})
	return complex
}

// extractProperties keeps the non-complex entries of an object value.
// Scalars and arrays are wrapped as {"value": v}.
func extractProperties(v document.Value) *document.Object {
	props := document.NewObject()
	obj, ok := document.AsObject(v)
	if !ok {
		props.Set("value", v)
		return props
	}
	obj.Each(func(k string, child document.Value) bool {
		if !isComplex(child) {
			props.Set(k, child)
		}
		return true
	})
	return props
}

// walk emits one node and one hierarchical edge per entry of subtree, in
// document order, descending only into complex values.
func (b *builder) walk(subtree *document.Object, parentID, parentPath, nodeType string) {
	subtree.Each(func(key string, value document.Value) bool {
		id := parentPath + "." + key
		complex := isComplex(value)

		size := graph.SizeLeaf
		if complex {
			size = graph.SizeComposite
		}

		b.addNode(graph.NodeData{
			ID:         id,
			Label:      FormatLabel(key),
			Category:   determineCategory(key, parentPath),
			Size:       size,
			Path:       id,
			Properties: extractProperties(value),
			NodeType:   nodeType,
		})

		b.addEdge(graph.EdgeData{
			ID:     parentID + "-" + id,
			Source: parentID,
			Target: id,
			Type:   graph.EdgeHierarchical,
		}, graph.EdgeHierarchical)

		if complex {
			child, _ := document.AsObject(value)
			b.walk(child, id, id, nodeType)
		}
		return true
	})
}

package ontology

import (
	stderrors "errors"

	"github.com/matzehuels/ontograph/pkg/document"
	"github.com/matzehuels/ontograph/pkg/errors"
	"github.com/matzehuels/ontograph/pkg/graph"
)

// notAvailable fills root properties the document does not provide.
const notAvailable = "N/A"

// ParseBytes decodes data and parses it. It fails with INVALID_JSON for
// malformed input and INVALID_DOCUMENT when the top-level value is not an
// object.
func ParseBytes(data []byte) (graph.Graph, error) {
	doc, err := document.DecodeObject(data)
	if err != nil {
		if stderrors.Is(err, document.ErrNotObject) {
			return graph.Graph{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "ontology must be a JSON object")
		}
		return graph.Graph{}, errors.Wrap(errors.ErrCodeInvalidJSON, err, "invalid JSON")
	}
	return Parse(doc)
}

// Parse converts an ontology document into a graph. Only a nil document is
// an error; every other input yields a graph, possibly empty.
func Parse(doc *document.Object) (graph.Graph, error) {
	if doc == nil {
		return graph.Graph{}, errors.New(errors.ErrCodeInvalidDocument, "ontology must be a JSON object")
	}

	rootKey, rootValue, found := findRoot(doc)
	if !found {
		rootKey = defaultRootKey
	}
	root, ok := document.AsObject(rootValue)
	if !ok {
		root = document.NewObject()
	}

	classes, hasClasses := findSection(root, doc, sectionClasses)
	instances, hasInstances := findSection(root, doc, sectionInstances)
	machine, hasMachine := findSection(root, doc, sectionMachineInstance)

	b := newBuilder()

	// Three-way root policy: class-only documents and documents with no
	// sections both get the root node; anything with instances does not.
	switch {
	case hasClasses && !hasInstances && !hasMachine:
		b.addRoot(rootKey, root)
	case !hasInstances && !hasMachine:
		b.addRoot(rootKey, root)
	}

	if hasMachine {
		wrapped := document.NewObject()
		wrapped.Set(sectionMachineInstance, machine)
		b.walk(wrapped, graph.RootNodeID, graph.RootNodeID, graph.NodeTypeInstance)
	}

	if hasClasses {
		b.walk(classes, graph.RootNodeID, graph.RootNodeID+"."+sectionClasses, graph.NodeTypeDefinition)
		v, _ := classes.Get(sectionRelationships)
		if rels, ok := document.AsObject(v); ok {
			b.resolveRelationships(rels)
		}
	}

	if hasInstances {
		b.addInstances(instances)
	}

	if edges, ok := findEdgeList(root, doc); ok {
		b.resolveEdgeList(edges)
	}

	return b.result(), nil
}

// addRoot creates the synthetic root node.
func (b *builder) addRoot(key string, root *document.Object) {
	props := document.NewObject()
	for _, name := range []string{"version", "domain", "description"} {
		v, ok := root.Get(name)
		if !ok {
			v = notAvailable
		}
		props.Set(name, v)
	}

	b.addNode(graph.NodeData{
		ID:         graph.RootNodeID,
		Label:      FormatLabel(key),
		Category:   CategoryRoot,
		Size:       graph.SizeRoot,
		Path:       graph.RootNodeID,
		Properties: props,
		NodeType:   graph.NodeTypeRoot,
	})
}

package ontology

import "github.com/matzehuels/ontograph/pkg/document"

// rootCandidates are the well-known names of the top-level ontology object,
// tried in order before falling back to the first object-valued entry.
var rootCandidates = []string{
	"injection_molding_machine_maintenance_ontology",
	"ontology",
	"knowledge_graph",
	"kg",
	"root",
}

// defaultRootKey labels the root when the document has no usable root object.
const defaultRootKey = "ontology"

// Section names.
const (
	sectionClasses         = "classes"
	sectionInstances       = "instances"
	sectionEdges           = "edges"
	sectionMachineInstance = "machine_instance"
	sectionRelationships   = "relationships"
)

// findRoot locates the top-level ontology object. A well-known key wins even
// when its value is not an object; otherwise the first object-valued entry
// in document order is used.
func findRoot(doc *document.Object) (key string, value document.Value, ok bool) {
	for _, k := range rootCandidates {
		if v, present := doc.Get(k); present {
			return k, v, true
		}
	}

	doc.Each(func(k string, v document.Value) bool {
		if _, isObj := document.AsObject(v); isObj {
			key, value, ok = k, v, true
			return false
		}
		return true
	})
	return key, value, ok
}

// findSection returns the first object stored under name in root, then doc.
func findSection(root, doc *document.Object, name string) (*document.Object, bool) {
	for _, scope := range []*document.Object{root, doc} {
		v, _ := scope.Get(name)
		if obj, ok := document.AsObject(v); ok {
			return obj, true
		}
	}
	return nil, false
}

// findEdgeList returns the first array stored under "edges" in root, then doc.
func findEdgeList(root, doc *document.Object) ([]document.Value, bool) {
	for _, scope := range []*document.Object{root, doc} {
		v, _ := scope.Get(sectionEdges)
		if arr, ok := document.AsArray(v); ok {
			return arr, true
		}
	}
	return nil, false
}

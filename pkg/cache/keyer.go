package cache

// Keyer derives cache keys. Implementations must be deterministic.
type Keyer interface {
	// GraphKey identifies the graph parsed from a document with the given hash.
	GraphKey(docHash string) string
	// RenderKey identifies a rendered artifact of a graph.
	RenderKey(graphHash, format string) string
}

// graphSchema is bumped whenever the parsed graph shape changes so stale
// entries are ignored.
const graphSchema = 1

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GraphKey returns "graph:<sha256>".
func (DefaultKeyer) GraphKey(docHash string) string {
	return hashKey("graph", graphSchema, docHash)
}

// RenderKey returns "render:<sha256>".
func (DefaultKeyer) RenderKey(graphHash, format string) string {
	return hashKey("render", graphHash, format)
}

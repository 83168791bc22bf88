package ontology

import (
	"strconv"
	"strings"

	"github.com/matzehuels/ontograph/pkg/document"
	"github.com/matzehuels/ontograph/pkg/graph"
)

// relationshipKinds are the keys of classes.relationships that declare
// edges, resolved in this order.
var relationshipKinds = []string{
	"causal_relationships",
	"functional_dependencies",
	"temporal_relationships",
	"spatial_relationships",
	"part_of",
	"uses",
	"affects",
}

// resolveRelationships turns declared relationships into relational edges.
// Endpoints are matched by label, and entries whose endpoints cannot be
// matched are dropped.
func (b *builder) resolveRelationships(rels *document.Object) {
	for _, kind := range relationshipKinds {
		v, ok := rels.Get(kind)
		if !ok {
			continue
		}
		for idx, entry := range entriesOf(v) {
			rel, ok := document.AsObject(entry)
			if !ok {
				continue
			}
			source, target := rel.String("source"), rel.String("target")
			if source == "" || target == "" {
				continue
			}
			sourceID, ok := b.findNodeByName(source)
			if !ok {
				continue
			}
			targetID, ok := b.findNodeByName(target)
			if !ok {
				continue
			}

			// A present type is kept even when empty; only a missing one
			// falls back to the section key.
			relType := strings.ReplaceAll(kind, "_", " ")
			if v, ok := rel.Get("type"); ok {
				relType = scalarString(v)
			}
			b.addEdge(graph.EdgeData{
				ID:           "rel-" + kind + "-" + strconv.Itoa(idx),
				Source:       sourceID,
				Target:       targetID,
				Type:         graph.EdgeRelational,
				RelationType: relType,
			}, graph.EdgeRelational)
		}
	}
}

// entriesOf lists the members of an array, or the values of an object in
// document order. Anything else has no entries.
func entriesOf(v document.Value) []document.Value {
	if arr, ok := document.AsArray(v); ok {
		return arr
	}
	obj, ok := document.AsObject(v)
	if !ok {
		return nil
	}
	out := make([]document.Value, 0, obj.Len())
	obj.Each(func(_ string, child document.Value) bool {
		out = append(out, child)
		return true
	})
	return out
}

// findNodeByName returns the first node whose normalized label contains the
// normalized name or is contained in it.
func (b *builder) findNodeByName(name string) (string, bool) {
	want := normalizeName(name)
	for _, n := range b.nodes {
		label := normalizeName(n.Data.Label)
		if strings.Contains(label, want) || strings.Contains(want, label) {
			return n.Data.ID, true
		}
	}
	return "", false
}

// findNodeByInstanceID prefers the exact instance id and otherwise returns
// the first node whose id ends in "."+id.
func (b *builder) findNodeByInstanceID(id string) (string, bool) {
	if exact := instancePrefix + id; b.hasNode(exact) {
		return exact, true
	}
	suffix := "." + id
	for _, n := range b.nodes {
		if strings.HasSuffix(n.Data.ID, suffix) {
			return n.Data.ID, true
		}
	}
	return "", false
}

// Keys of an explicit edge entry that map onto fixed edge fields.
var reservedEdgeKeys = map[string]bool{
	"id": true, "source": true, "target": true, "type": true, "relationType": true,
}

// resolveEdgeList turns explicit edge entries into edges. Endpoints are
// matched by instance id and unresolved entries are dropped.
func (b *builder) resolveEdgeList(entries []document.Value) {
	for _, entry := range entries {
		e, ok := document.AsObject(entry)
		if !ok {
			continue
		}
		source, target := e.String("source"), e.String("target")
		if source == "" || target == "" {
			continue
		}
		sourceID, ok := b.findNodeByInstanceID(source)
		if !ok {
			continue
		}
		targetID, ok := b.findNodeByInstanceID(target)
		if !ok {
			continue
		}

		edgeType := e.String("type")
		class := graph.EdgeRelational
		if edgeType == graph.EdgeCausal {
			class = graph.EdgeCausal
		}
		if edgeType == "" {
			edgeType = graph.EdgeRelational
		}

		id := entryID(e)
		if id == "" {
			id = "edge-" + strconv.Itoa(len(b.edges))
		}

		var extra *document.Object
		e.Each(func(k string, v document.Value) bool {
			if reservedEdgeKeys[k] {
				return true
			}
			if extra == nil {
				extra = document.NewObject()
			}
			extra.Set(k, v)
			return true
		})

		b.addEdge(graph.EdgeData{
			ID:           id,
			Source:       sourceID,
			Target:       targetID,
			Type:         edgeType,
			RelationType: e.String("relationType"),
			Extra:        extra,
		}, class)
	}
}

func entryID(e *document.Object) string {
	v, _ := e.Get("id")
	return scalarString(v)
}

package ontology

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"testing"

	"github.com/matzehuels/ontograph/pkg/document"
	"github.com/matzehuels/ontograph/pkg/graph"
)

var fuzzKeys = []string{
	"pump", "hydraulic_unit", "heater", "pressure", "failure_mode", "manual",
	"operator", "inventory", "sensor_01", "zone", "spec", "notes", "mold",
}

func randomTree(r *rand.Rand, depth int) *document.Object {
	obj := document.NewObject()
	for i, n := 0, 1+r.Intn(4); i < n; i++ {
		key := fuzzKeys[r.Intn(len(fuzzKeys))] + "_" + strconv.Itoa(r.Intn(3))
		switch {
		case depth > 0 && r.Intn(3) == 0:
			obj.Set(key, randomTree(r, depth-1))
		case r.Intn(4) == 0:
			obj.Set(key, []document.Value{json.Number("1"), "x"})
		default:
			obj.Set(key, json.Number(strconv.Itoa(r.Intn(100))))
		}
	}
	return obj
}

func randomDocument(r *rand.Rand) *document.Object {
	doc := document.NewObject()
	classes := randomTree(r, 4)

	if r.Intn(2) == 0 {
		rels := document.NewObject()
		var entries []document.Value
		for i := 0; i < 5; i++ {
			e := document.NewObject()
			e.Set("source", fuzzKeys[r.Intn(len(fuzzKeys))])
			e.Set("target", "missing_"+strconv.Itoa(i))
			if r.Intn(2) == 0 {
				e.Set("target", fuzzKeys[r.Intn(len(fuzzKeys))])
			}
			entries = append(entries, e)
		}
		rels.Set("causal_relationships", entries)
		classes.Set(sectionRelationships, rels)
	}
	doc.Set(sectionClasses, classes)

	if r.Intn(2) == 0 {
		instances := document.NewObject()
		for i := 0; i < 3; i++ {
			key := "I" + strconv.Itoa(i)
			rec := document.NewObject()
			rec.Set("type", []string{"Pump", "Material", "MaintenanceTask", "Thing"}[r.Intn(4)])
			instances.Set(key, rec)
		}
		doc.Set(sectionInstances, instances)
	}

	if r.Intn(2) == 0 {
		var edges []document.Value
		for i := 0; i < 4; i++ {
			e := document.NewObject()
			e.Set("source", "I"+strconv.Itoa(r.Intn(5)))
			e.Set("target", fuzzKeys[r.Intn(len(fuzzKeys))]+"_"+strconv.Itoa(r.Intn(3)))
			edges = append(edges, e)
		}
		doc.Set(sectionEdges, edges)
	}
	return doc
}

func TestRandomDocumentsHaveNoDanglingEdges(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		doc := randomDocument(r)
		g, err := Parse(doc)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}

		ids := make(map[string]bool, len(g.Nodes))
		for _, n := range g.Nodes {
			ids[n.Data.ID] = true
		}
		for _, e := range g.Edges {
			if !ids[e.Data.Source] || !ids[e.Data.Target] {
				data, _ := doc.MarshalJSON()
				t.Fatalf("dangling edge %+v in graph of %s", e.Data, data)
			}
		}
	}
}

func TestRandomClassTreesHierarchicalEdgeCount(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		doc := document.NewObject()
		doc.Set(sectionClasses, randomTree(r, 5))

		g, err := Parse(doc)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}

		walked, hierarchical := 0, 0
		for _, n := range g.Nodes {
			if n.Data.NodeType == graph.NodeTypeDefinition {
				walked++
			}
		}
		for _, e := range g.Edges {
			if e.Classes == graph.EdgeHierarchical {
				hierarchical++
			}
		}
		if walked != hierarchical {
			t.Fatalf("hierarchical edges = %d, want %d (one per walked node)", hierarchical, walked)
		}
	}
}

func TestRandomDocumentsParseIdentically(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		doc := randomDocument(r)
		a, _ := Parse(doc)
		b, _ := Parse(doc)
		ja, _ := json.Marshal(a)
		jb, _ := json.Marshal(b)
		if string(ja) != string(jb) {
			t.Fatalf("parse %d not idempotent", i)
		}
	}
}

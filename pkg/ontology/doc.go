// Package ontology converts loosely-schematized JSON ontology documents into
// node/edge graphs.
//
// # Overview
//
// An ontology document is a JSON object holding some combination of:
//
//   - a class hierarchy under "classes" (the TBox), walked recursively
//   - flat instance records under "instances" (the ABox), one node each
//   - declared relationships under "classes.relationships"
//   - an explicit "edges" list referring to instance ids
//   - a "machine_instance" metadata object
//
// Sections are looked up on the discovered root object first, then on the
// top-level document, so both nested and flat layouts work.
//
// # Usage
//
//	g, err := ontology.ParseBytes(data)
//	if err != nil {
//	    return err // only non-object or malformed JSON fails
//	}
//	for _, n := range g.Nodes {
//	    fmt.Println(n.Data.ID, n.Data.Category)
//	}
//
// # Determinism
//
// Parsing is a pure, single-pass computation. Object keys are visited in
// document order, categories are matched in registry order, and fuzzy name
// resolution picks the first qualifying node in creation order. Parsing the
// same document twice yields identical node and edge sequences.
//
// # Degradation
//
// Nothing inside a valid object aborts a parse. Missing sections yield a
// smaller graph, unknown types fall back to the "other" category, and
// relationships or edges whose endpoints cannot be resolved are dropped.
// Every edge in the result references nodes that exist in the result.
package ontology

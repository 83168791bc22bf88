// Package graph provides the serialization types for ontology graphs.
//
// This package defines the canonical wire format shared by the parser, the
// CLI, the parse cache, and the HTTP API. The shape follows what browser
// graph libraries expect: every element carries its attributes under a
// "data" key, and edges also carry a "classes" tag used for styling.
//
// # Graph Serialization
//
//	{
//	  "nodes": [
//	    {"data": {"id": "root", "label": "Ontology", "category": "root", ...}}
//	  ],
//	  "edges": [
//	    {"data": {"id": "root-root.classes", "source": "root", "target": "root.classes",
//	              "type": "hierarchical"}, "classes": "hierarchical"}
//	  ]
//	}
//
// Edge data may carry arbitrary pass-through attributes from the source
// document; they are flattened into "data" next to the fixed fields.
//
// Common operations:
//
//	g, _ := graph.ReadGraphFile("graph.json")  // File → Graph
//	graph.WriteGraphFile(g, "output.json")     // Graph → File
//	data, _ := graph.MarshalGraph(g)           // Graph → []byte
//	parsed, _ := graph.UnmarshalGraph(data)    // []byte → Graph
//
// # Queries
//
// [Graph.FindNode], [Graph.Search], [Graph.Filter] and [Graph.ComputeStats]
// back the query endpoints of the API and the CLI's stats output.
//
// # Concurrency
//
// A Graph is immutable by convention once returned from the parser. All
// query methods only read and are safe for concurrent use.
package graph

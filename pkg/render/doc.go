// Package render provides visualization output for ontology graphs.
//
// The graph JSON itself is the primary output and is consumed by browser
// clients. This package and its subpackages add static renderings:
//
//   - [nodelink]: Graphviz node-link diagrams (DOT, SVG, PNG)
//
// Format names shared by the CLI, pipeline and API live here so every entry
// point accepts the same set.
package render

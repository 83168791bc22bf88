// Package pkg provides the libraries behind ontograph.
//
// # Overview
//
// Ontograph turns industrial ontology documents (JSON with classes,
// instances and relationships) into node/edge graphs. The packages fall into
// three groups:
//
//  1. Domain: [document] (order-preserving JSON), [ontology] (document to
//     graph), [graph] (graph types, queries, serialization)
//  2. Delivery: [render] (DOT, SVG, PNG), [pipeline] (cached parse and
//     render), [api] (HTTP service), [store] (the currently loaded graph)
//  3. Infrastructure: [cache], [config], [errors], [observability],
//     [buildinfo]
//
// # Data Flow
//
//	ontology JSON
//	     ↓
//	[document] decode, keys kept in order
//	     ↓
//	[ontology] root discovery, tree walk, instances, relationships, edge list
//	     ↓
//	[graph] nodes and edges
//	     ↓
//	JSON / DOT / SVG / PNG, or served over HTTP
//
// # Quick Start
//
//	g, err := ontology.ParseBytes(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(g.ComputeStats().TotalNodes)
//
// For cached runs, use [pipeline.Runner]:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Load(ctx, "plant.json", data, pipeline.Options{})
//
// [document]: github.com/matzehuels/ontograph/pkg/document
// [ontology]: github.com/matzehuels/ontograph/pkg/ontology
// [graph]: github.com/matzehuels/ontograph/pkg/graph
// [render]: github.com/matzehuels/ontograph/pkg/render
// [pipeline]: github.com/matzehuels/ontograph/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/ontograph/pkg/pipeline#Runner
// [api]: github.com/matzehuels/ontograph/pkg/api
// [store]: github.com/matzehuels/ontograph/pkg/store
// [cache]: github.com/matzehuels/ontograph/pkg/cache
// [config]: github.com/matzehuels/ontograph/pkg/config
// [errors]: github.com/matzehuels/ontograph/pkg/errors
// [observability]: github.com/matzehuels/ontograph/pkg/observability
// [buildinfo]: github.com/matzehuels/ontograph/pkg/buildinfo
package pkg

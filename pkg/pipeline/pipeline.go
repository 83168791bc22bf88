// Package pipeline runs the parse → render pipeline shared by the CLI and
// the HTTP API.
//
// # Stages
//
//  1. Load: parse an ontology document into a graph, cached by document hash
//  2. Render: produce output artifacts (graph JSON, DOT, SVG, PNG), cached
//     by graph hash and format
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Load(ctx, "plant.json", data, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	artifacts, err := runner.Render(ctx, res.Graph, pipeline.Options{Formats: []string{"svg"}})
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ontograph/pkg/errors"
	"github.com/matzehuels/ontograph/pkg/graph"
	"github.com/matzehuels/ontograph/pkg/render"
)

// Cache lifetimes. Parsed graphs depend only on the document bytes, so they
// can live long; artifacts are larger and expire sooner.
const (
	TTLGraph    = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = render.FormatJSON

// ValidFormats is the set of supported output formats.
var ValidFormats = func() map[string]bool {
	m := make(map[string]bool, len(render.Formats))
	for _, f := range render.Formats {
		m[f] = true
	}
	return m
}()

// Options controls a pipeline run.
type Options struct {
	// Formats lists the artifacts to render.
	Formats []string

	// Categories restricts rendering to these categories (plus the root).
	// Empty renders everything.
	Categories []string

	// Detailed adds category and type lines to diagram labels.
	Detailed bool

	// HideHierarchy omits hierarchical edges from diagrams.
	HideHierarchy bool

	// Refresh bypasses cache reads. Results are still written back.
	Refresh bool

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// ValidateAndSetDefaults fills in default formats and rejects unsupported ones.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	return errors.ValidateFormats(o.Formats, ValidFormats)
}

// Result is the outcome of loading a document.
type Result struct {
	Graph graph.Graph

	// Source names the document (a filename or "-").
	Source string

	// DocHash is the SHA-256 of the document bytes.
	DocHash string

	// GraphHash is the SHA-256 of the serialized graph.
	GraphHash string

	// Duplicates lists node ids that occur more than once.
	Duplicates []string

	// CacheHit reports whether the graph came from the cache.
	CacheHit bool

	// Duration is the wall time of the load, including cache lookups.
	Duration time.Duration
}

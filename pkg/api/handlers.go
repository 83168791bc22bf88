package api

import (
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/ontograph/pkg/buildinfo"
	"github.com/matzehuels/ontograph/pkg/errors"
	"github.com/matzehuels/ontograph/pkg/graph"
	"github.com/matzehuels/ontograph/pkg/ontology"
	"github.com/matzehuels/ontograph/pkg/pipeline"
	"github.com/matzehuels/ontograph/pkg/render"
	"github.com/matzehuels/ontograph/pkg/store"
)

var errNoGraph = errors.New(errors.ErrCodeNoGraphLoaded, "No ontology loaded")

type uploadStats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

type uploadResponse struct {
	Message    string      `json:"message"`
	GraphID    string      `json:"graph_id"`
	Duplicates []string    `json:"duplicates,omitempty"`
	Stats      uploadStats `json:"stats"`
}

type nodeResponse struct {
	Node          graph.Node   `json:"node"`
	IncomingEdges []graph.Edge `json:"incoming_edges"`
	OutgoingEdges []graph.Edge `json:"outgoing_edges"`
}

type filterRequest struct {
	Categories []string `json:"categories"`
}

type healthResponse struct {
	Status         string `json:"status"`
	OntologyLoaded bool   `json:"ontology_loaded"`
	Version        string `json:"version"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "File too large"})
			return
		}
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "No file provided"))
		return
	}
	defer file.Close()

	if err := errors.ValidateUploadFilename(header.Filename); err != nil {
		s.writeError(w, err)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read upload"))
		return
	}

	res, err := s.runner.Load(r.Context(), header.Filename, data, pipeline.Options{Logger: s.logger})
	if err != nil {
		s.writeError(w, err)
		return
	}

	snap := s.store.Set(header.Filename, res.Graph)
	s.writeJSON(w, http.StatusOK, uploadResponse{
		Message:    "Ontology loaded successfully",
		GraphID:    snap.ID,
		Duplicates: res.Duplicates,
		Stats:      uploadStats{Nodes: res.Graph.NodeCount(), Edges: res.Graph.EdgeCount()},
	})
}

// current returns the loaded snapshot, or writes a 404 and reports false.
func (s *Server) current(w http.ResponseWriter) (store.Snapshot, bool) {
	snap, ok := s.store.Current()
	if !ok {
		s.writeError(w, errNoGraph)
	}
	return snap, ok
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.current(w)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, snap.Graph)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"categories": ontology.Categories()})
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.current(w)
	if !ok {
		return
	}
	id := chi.URLParam(r, "*")
	node, found := snap.Graph.FindNode(id)
	if !found {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "Node not found"))
		return
	}
	s.writeJSON(w, http.StatusOK, nodeResponse{
		Node:          node,
		IncomingEdges: nonNil(snap.Graph.Incoming(id)),
		OutgoingEdges: nonNil(snap.Graph.Outgoing(id)),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.current(w)
	if !ok {
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	s.writeJSON(w, http.StatusOK, map[string]any{"results": nonNil(snap.Graph.Search(q))})
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.current(w)
	if !ok {
		return
	}
	var req filterRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap.Graph.Filter(req.Categories))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.current(w)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, snap.Graph.ComputeStats())
}

// handleRender renders the current graph as a diagram. Query parameters:
// categories (comma-separated), detailed, hide_hierarchy.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.current(w)
	if !ok {
		return
	}

	format := chi.URLParam(r, "format")
	q := r.URL.Query()
	opts := pipeline.Options{
		Formats:       []string{format},
		Detailed:      q.Get("detailed") == "true",
		HideHierarchy: q.Get("hide_hierarchy") == "true",
		Logger:        s.logger,
	}
	for _, c := range strings.Split(q.Get("categories"), ",") {
		if c = strings.TrimSpace(c); c != "" {
			opts.Categories = append(opts.Categories, c)
		}
	}

	artifacts, err := s.runner.Render(r.Context(), snap.Graph, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", render.ContentType(format))
	if _, err := w.Write(artifacts[format]); err != nil {
		s.logger.Warn("write render failed", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:         "healthy",
		OntologyLoaded: s.store.Loaded(),
		Version:        buildinfo.Version,
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

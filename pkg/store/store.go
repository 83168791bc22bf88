// Package store holds the graph currently served by the HTTP API.
//
// There is exactly one current graph. An upload replaces it atomically and
// every query reads a consistent snapshot, so handlers never observe a
// half-updated graph.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/ontograph/pkg/graph"
)

// Snapshot is one loaded graph. Snapshots are immutable once stored.
type Snapshot struct {
	ID       string
	Filename string
	LoadedAt time.Time
	Graph    graph.Graph
}

// Store owns the current snapshot. The zero value is an empty store.
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
	now     func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Set replaces the current graph and returns the new snapshot.
func (s *Store) Set(filename string, g graph.Graph) Snapshot {
	snap := &Snapshot{
		ID:       uuid.NewString(),
		Filename: filename,
		LoadedAt: s.clock(),
		Graph:    g,
	}

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()
	return *snap
}

// Current returns the current snapshot, if any.
func (s *Store) Current() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Snapshot{}, false
	}
	return *s.current, true
}

// Loaded reports whether a graph is loaded.
func (s *Store) Loaded() bool {
	_, ok := s.Current()
	return ok
}

// Clear drops the current graph.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Store) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}

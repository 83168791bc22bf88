package store

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/ontograph/pkg/graph"
)

func oneNode(id string) graph.Graph {
	return graph.Graph{Nodes: []graph.Node{{Data: graph.NodeData{ID: id}}}, Edges: []graph.Edge{}}
}

func TestStoreEmpty(t *testing.T) {
	s := New()
	if _, ok := s.Current(); ok {
		t.Error("new store should be empty")
	}
	if s.Loaded() {
		t.Error("Loaded() should be false")
	}
}

func TestStoreSetReplaces(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := &Store{now: func() time.Time { return fixed }}

	first := s.Set("a.json", oneNode("a"))
	if _, err := uuid.Parse(first.ID); err != nil {
		t.Errorf("snapshot id %q is not a uuid: %v", first.ID, err)
	}
	if !first.LoadedAt.Equal(fixed) {
		t.Errorf("LoadedAt = %v, want %v", first.LoadedAt, fixed)
	}

	second := s.Set("b.json", oneNode("b"))
	if second.ID == first.ID {
		t.Error("each Set should get a fresh id")
	}

	cur, ok := s.Current()
	if !ok {
		t.Fatal("Current() should return the latest snapshot")
	}
	if cur.Filename != "b.json" || cur.Graph.Nodes[0].Data.ID != "b" {
		t.Errorf("Current() = %+v, want b.json", cur)
	}

	s.Clear()
	if s.Loaded() {
		t.Error("Clear should drop the snapshot")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set("x.json", oneNode("x"))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if snap, ok := s.Current(); ok && snap.Filename != "x.json" {
					t.Errorf("torn read: %+v", snap)
				}
			}
		}()
	}
	wg.Wait()
}

package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/ontograph/pkg/cache"
	"github.com/matzehuels/ontograph/pkg/config"
	"github.com/matzehuels/ontograph/pkg/graph"
)

const testDoc = `{
	"ontology": {
		"version": "2.1",
		"classes": {
			"machine_components": {"hydraulic_pump": {"flow": 10}, "heater": {"zones": {"count": 4}}},
			"maintenance_tasks": {"inspection": {"interval": "weekly"}}
		}
	}
}`

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plant.json")
	if err := os.WriteFile(path, []byte(testDoc), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (*CLI, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return c, root.ExecuteContext(context.Background())
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"svg", []string{"svg"}},
		{"svg, png ,dot", []string{"svg", "png", "dot"}},
		{",,svg,", []string{"svg"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := parseFormats(""); !reflect.DeepEqual(got, []string{"svg"}) {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		formats []string
		want    map[string]string
	}{
		{
			name:    "single format explicit output",
			input:   "plant.json",
			output:  "out/diagram.svg",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "out/diagram.svg"},
		},
		{
			name:    "default base from input",
			input:   "data/plant.json",
			formats: []string{"svg", "json"},
			want:    map[string]string{"svg": "plant.svg", "json": "plant.graph.json"},
		},
		{
			name:    "explicit base strips extension",
			input:   "plant.json",
			output:  "out/plant.svg",
			formats: []string{"svg", "dot"},
			want:    map[string]string{"svg": "out/plant.svg", "dot": "out/plant.dot"},
		},
		{
			name:    "stdin",
			input:   "-",
			formats: []string{"png"},
			want:    map[string]string{"png": "ontology.png"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.input, tt.output, tt.formats)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("outputPaths = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountRows(t *testing.T) {
	got := countRows(map[string]int{"b": 2, "a": 2, "c": 5})
	want := [][]string{{"c", "5"}, {"a", "2"}, {"b", "2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("countRows = %v, want %v", got, want)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ontograph.toml")
	body := "[server]\naddr = \":9000\"\n\n[cache]\nbackend = \"none\"\n\n[log]\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvAddr, ":9100")

	c := New(io.Discard, LogInfo)
	c.configPath = path
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.config.Server.Addr != ":9100" {
		t.Errorf("Addr = %q, want env override :9100", c.config.Server.Addr)
	}
	if c.config.Cache.Backend != cache.BackendNone {
		t.Errorf("Backend = %q, want none", c.config.Cache.Backend)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("log level = %v, want debug from config", c.Logger.GetLevel())
	}

	c.configPath = filepath.Join(dir, "missing.toml")
	if err := c.loadConfig(); err == nil {
		t.Error("loadConfig should fail for a missing file")
	}
}

func TestParseCommandWritesGraph(t *testing.T) {
	doc := writeDoc(t)
	out := filepath.Join(t.TempDir(), "graph.json")

	if _, err := execute(t, "parse", doc, "-o", out, "--no-cache"); err != nil {
		t.Fatalf("parse: %v", err)
	}

	g, err := graph.ReadGraphFile(out)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if g.NodeCount() != 7 || g.EdgeCount() != 6 {
		t.Errorf("graph = %d nodes, %d edges; want 7, 6", g.NodeCount(), g.EdgeCount())
	}
}

func TestRenderCommandWritesArtifacts(t *testing.T) {
	doc := writeDoc(t)
	base := filepath.Join(t.TempDir(), "plant")

	if _, err := execute(t, "render", doc, "-f", "dot,json", "-o", base, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}

	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	if len(dot) == 0 || string(dot[:7]) != "digraph" {
		t.Errorf("dot output should start with digraph, got %q", dot)
	}

	data, err := os.ReadFile(base + ".graph.json")
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var g graph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		t.Fatalf("decode graph json: %v", err)
	}
	if g.NodeCount() != 7 {
		t.Errorf("nodes = %d, want 7", g.NodeCount())
	}
}

func TestRenderCommandRejectsFormat(t *testing.T) {
	if _, err := execute(t, "render", writeDoc(t), "-f", "pdf", "--no-cache"); err == nil {
		t.Error("render should reject an unsupported format")
	}
}

func TestParseCommandMissingFile(t *testing.T) {
	if _, err := execute(t, "parse", filepath.Join(t.TempDir(), "nope.json"), "--no-cache"); err == nil {
		t.Error("parse should fail for a missing file")
	}
}

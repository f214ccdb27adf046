package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamviz/core"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestBuildPreset_Topologies(t *testing.T) {
	cases := []struct {
		spec     string
		vertices int
		edges    int
	}{
		{"cycle:5", 5, 5},
		{"path:4", 4, 3},
		{"star:6", 6, 5},
		{"wheel:6", 6, 10},
		{"complete:4", 4, 6},
		{"bipartite:2x3", 5, 6},
	}

	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			g, err := buildPreset(tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestBuildPreset_Rejections(t *testing.T) {
	for _, spec := range []string{
		"wheel",         // missing size
		"wheel:",        // empty size
		"wheel:six",     // not a number
		"wheel:2",       // below the topology minimum
		"torus:5",       // unknown topology
		"bipartite:2",   // missing partition split
		"bipartite:ax3", // non-numeric partition
	} {
		t.Run(spec, func(t *testing.T) {
			_, err := buildPreset(spec)
			assert.Error(t, err)
		})
	}
}

func TestLoadGraphFile_KeepsListedOrder(t *testing.T) {
	path := writeTemp(t, `
vertices: [10, 7, 42]
edges:
  - [10, 7]
  - [7, 42]
  - [42, 10]
`)

	g, err := loadGraphFile(path)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{10, 7, 42}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestLoadGraphFile_SkipsSloppyEdges(t *testing.T) {
	path := writeTemp(t, `
vertices: [1, 2, 3]
edges:
  - [1, 2]
  - [2, 1]   # duplicate, reversed
  - [2, 2]   # self-loop
  - [2, 99]  # dangling endpoint
  - [2, 3]
`)

	g, err := loadGraphFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount(), "dangling endpoints must not create vertices")
	assert.Equal(t, 2, g.EdgeCount())
}

func TestLoadGraphFile_MalformedEdge(t *testing.T) {
	path := writeTemp(t, `
vertices: [1, 2, 3]
edges:
  - [1, 2, 3]
`)

	_, err := loadGraphFile(path)
	assert.ErrorContains(t, err, "edge #1")
}

func TestLoadGraphFile_Missing(t *testing.T) {
	_, err := loadGraphFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadGraph_FileWinsOverPreset(t *testing.T) {
	path := writeTemp(t, "vertices: [1, 2]\nedges: [[1, 2]]\n")

	g, err := loadGraph("complete:4", path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
}

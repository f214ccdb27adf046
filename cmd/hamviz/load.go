package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamviz/builder"
	"github.com/katalvlaran/hamviz/core"
)

// graphFile is the on-disk YAML shape:
//
//	vertices: [1, 2, 3]
//	edges:
//	  - [1, 2]
//	  - [2, 3]
type graphFile struct {
	Vertices []int64   `yaml:"vertices"`
	Edges    [][]int64 `yaml:"edges"`
}

// loadGraph resolves the two input flags: a file wins over a preset.
func loadGraph(preset, file string) (*core.Graph, error) {
	if file != "" {
		return loadGraphFile(file)
	}

	return buildPreset(preset)
}

// loadGraphFile parses a YAML graph description. Vertex ids keep their
// listed order, which fixes the search's enumeration order. Edges whose
// endpoints were not listed, self-loops, and duplicates are skipped
// rather than rejected: hand-written classroom files are sloppy, and a
// sloppy edge list should not block the demonstration.
func loadGraphFile(path string) (*core.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	var gf graphFile
	if err = yaml.Unmarshal(raw, &gf); err != nil {
		return nil, fmt.Errorf("parse graph file %s: %w", path, err)
	}

	return assembleGraph(gf)
}

// assembleGraph turns the decoded file shape into a core.Graph.
func assembleGraph(gf graphFile) (*core.Graph, error) {
	g := core.NewGraph()
	listed := make(map[core.VertexID]bool, len(gf.Vertices))
	for _, id := range gf.Vertices {
		g.AddVertex(core.VertexID(id))
		listed[core.VertexID(id)] = true
	}

	for i, pair := range gf.Edges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("edge #%d: want [u, v], got %d values", i+1, len(pair))
		}
		u, v := core.VertexID(pair[0]), core.VertexID(pair[1])
		if !listed[u] || !listed[v] {
			continue // dangling endpoint
		}
		if err := g.AddEdge(u, v); err != nil {
			if errors.Is(err, core.ErrLoopNotAllowed) || errors.Is(err, core.ErrDuplicateEdge) {
				continue
			}

			return nil, fmt.Errorf("edge #%d: %w", i+1, err)
		}
	}

	return g, nil
}

// buildPreset parses "name:N" (or "bipartite:MxN") and invokes the
// matching topology constructor.
func buildPreset(spec string) (*core.Graph, error) {
	name, arg, ok := strings.Cut(spec, ":")
	if !ok || arg == "" {
		return nil, fmt.Errorf("preset %q: want name:N, e.g. wheel:6", spec)
	}

	if name == "bipartite" {
		left, right, err := parseBipartiteArg(arg)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", spec, err)
		}
		g, err := builder.BuildGraph(nil, builder.CompleteBipartite(left, right))
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", spec, err)
		}

		return g, nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("preset %q: size %q is not a number", spec, arg)
	}

	var cons builder.Constructor
	switch name {
	case "cycle":
		cons = builder.Cycle(n)
	case "path":
		cons = builder.Path(n)
	case "star":
		cons = builder.Star(n)
	case "wheel":
		cons = builder.Wheel(n)
	case "complete":
		cons = builder.Complete(n)
	default:
		return nil, fmt.Errorf("preset %q: unknown topology %q", spec, name)
	}

	g, err := builder.BuildGraph(nil, cons)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", spec, err)
	}

	return g, nil
}

// parseBipartiteArg splits "MxN" into the two partition sizes.
func parseBipartiteArg(arg string) (int, int, error) {
	l, r, ok := strings.Cut(arg, "x")
	if !ok {
		return 0, 0, fmt.Errorf("want MxN, e.g. 2x3, got %q", arg)
	}
	left, err := strconv.Atoi(l)
	if err != nil {
		return 0, 0, fmt.Errorf("partition size %q is not a number", l)
	}
	right, err := strconv.Atoi(r)
	if err != nil {
		return 0, 0, fmt.Errorf("partition size %q is not a number", r)
	}

	return left, right, nil
}

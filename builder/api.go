// SPDX-License-Identifier: MIT
// Package: hamviz/builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract (strict):
//   • One orchestrator: BuildGraph(opts, cons...). Creates g, resolves
//     cfg, runs constructors in order.
//   • Functional options resolve into an immutable builderConfig.
//   • Determinism: same options and constructor order ⇒ identical graphs.
//   • Constructors return sentinel errors; they never panic at runtime.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hamviz/core"
)

// Sentinel errors for graph construction.
var (
	// ErrTooFewVertices indicates a constructor parameter below the
	// topology's defined minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrConstructFailed indicates BuildGraph received a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters early, emit
// vertices and edges in a stable documented order, and return only
// sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from opts, and applies all constructors in order. Any constructor error
// is wrapped with "BuildGraph: %w" and returned immediately; no partial
// cleanup is attempted by design.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

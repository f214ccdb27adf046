// SPDX-License-Identifier: MIT
// Package: hamviz/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idOffset = 0
//   • idStride = 1
//
// With the defaults, constructor index i becomes vertex id i, so the
// dense indices of a fresh build coincide with the ids — the friendliest
// setting for classroom traces. Offset/stride exist to simulate the
// sparse id spaces a real editor produces.
package builder

import "github.com/katalvlaran/hamviz/core"

// Default id policy values.
const (
	// DefaultIDOffset is the id assigned to constructor index 0.
	DefaultIDOffset = 0

	// DefaultIDStride is the id gap between consecutive indices.
	DefaultIDStride = 1
)

const panicStrideInvalid = "builder: WithIDStride: stride must be >= 1"

// Option mutates the internal builder configuration.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	idOffset int64
	idStride int64
}

// idFn maps constructor index i to its vertex id.
func (c builderConfig) idFn(i int) core.VertexID {
	return core.VertexID(c.idOffset + c.idStride*int64(i))
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idOffset: DefaultIDOffset,
		idStride: DefaultIDStride,
	}
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}

// WithIDOffset sets the id of constructor index 0. Any value is legal,
// including negatives.
func WithIDOffset(offset int64) Option {
	return func(c *builderConfig) { c.idOffset = offset }
}

// WithIDStride sets the id gap between consecutive indices.
// Panics on stride < 1 (programmer error, not a runtime condition).
func WithIDStride(stride int64) Option {
	if stride < 1 {
		panic(panicStrideInvalid)
	}

	return func(c *builderConfig) { c.idStride = stride }
}

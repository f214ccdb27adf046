package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamviz/builder"
	"github.com/katalvlaran/hamviz/core"
	"github.com/katalvlaran/hamviz/hamilton"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestCycle_TopologyAndOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)

	assert.Equal(t, []core.VertexID{0, 1, 2, 3, 4}, g.Vertices())
	assert.Equal(t, 5, g.EdgeCount())
	for i := 0; i < 5; i++ {
		assert.True(t, g.HasEdge(core.VertexID(i), core.VertexID((i+1)%5)))
	}

	_, err = builder.BuildGraph(nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPath_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(0, 3))

	_, err = builder.BuildGraph(nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestStar_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	for leaf := core.VertexID(1); leaf <= 4; leaf++ {
		assert.True(t, g.HasEdge(0, leaf))
	}
	assert.False(t, g.HasEdge(1, 2))

	_, err = builder.BuildGraph(nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestWheel_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Wheel(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 8, g.EdgeCount(), "W_5 = 4-ring + 4 spokes")
	// Rim ring 1-2-3-4-1.
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(4, 1))
	// Spokes.
	for rim := core.VertexID(1); rim <= 4; rim++ {
		assert.True(t, g.HasEdge(0, rim))
	}

	_, err = builder.BuildGraph(nil, builder.Wheel(3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())

	_, err = builder.BuildGraph(nil, builder.Complete(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCompleteBipartite_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.CompleteBipartite(2, 3))
	require.NoError(t, err)

	assert.Equal(t, []core.VertexID{0, 1, 2, 3, 4}, g.Vertices())
	assert.Equal(t, 6, g.EdgeCount())
	for _, u := range []core.VertexID{0, 1} {
		for _, v := range []core.VertexID{2, 3, 4} {
			assert.True(t, g.HasEdge(u, v))
		}
	}
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(2, 3))

	_, err = builder.BuildGraph(nil, builder.CompleteBipartite(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestIDOffsetAndStride(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithIDOffset(100), builder.WithIDStride(10)},
		builder.Cycle(3),
	)
	require.NoError(t, err)

	assert.Equal(t, []core.VertexID{100, 110, 120}, g.Vertices())
	assert.True(t, g.HasEdge(100, 110))
	assert.True(t, g.HasEdge(120, 100))
}

func TestWithIDStride_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDStride(0) })
}

func TestBuildGraph_Deterministic(t *testing.T) {
	opts := []builder.Option{builder.WithIDOffset(7)}
	a, err := builder.BuildGraph(opts, builder.Wheel(6))
	require.NoError(t, err)
	b, err := builder.BuildGraph(opts, builder.Wheel(6))
	require.NoError(t, err)

	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestFixtures_SearchVerdicts(t *testing.T) {
	// The constructors exist to feed the engine; pin their verdicts.
	cases := []struct {
		name string
		cons builder.Constructor
		want hamilton.Outcome
	}{
		{"C5", builder.Cycle(5), hamilton.CycleFound},
		{"K4", builder.Complete(4), hamilton.CycleFound},
		{"W5", builder.Wheel(5), hamilton.CycleFound},
		{"K2_3", builder.CompleteBipartite(2, 3), hamilton.NoCycle},
		{"K3_3", builder.CompleteBipartite(3, 3), hamilton.CycleFound},
		{"P4", builder.Path(4), hamilton.NoCycle},
		{"Star5", builder.Star(5), hamilton.NoCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons)
			require.NoError(t, err)

			res, err := hamilton.Search(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Outcome)
		})
	}
}

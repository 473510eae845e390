package advanced

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdge(t *testing.T) {
	cases := []struct {
		name   string
		p0, p1 Point
		normal Point
	}{
		{"rightward", Point{0, 0}, Point{4, 0}, Point{0, -1}},
		{"upward", Point{4, 0}, Point{4, 2}, Point{1, 0}},
		{"leftward", Point{4, 2}, Point{2, 2}, Point{0, 1}},
		{"downward", Point{0, 4}, Point{0, 0}, Point{-1, 0}},
		{"diagonal", Point{0, 0}, Point{3, 3}, Point{math.Sqrt2 / 2, -math.Sqrt2 / 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			edge, err := NewEdge(c.p0, c.p1)
			require.NoError(t, err)
			assert.Equal(t, c.p0, edge.P0())
			assert.Equal(t, c.p1, edge.P1())
			assert.InDelta(t, c.normal.X, edge.Normal().X, Epsilon)
			assert.InDelta(t, c.normal.Y, edge.Normal().Y, Epsilon)
			assert.InDelta(t, 1, edge.Normal().Length(), Epsilon)
			assert.InDelta(t, c.p1.Sub(c.p0).Length(), edge.Length(), Epsilon)
		})
	}
}

func TestNewEdge_Degenerate(t *testing.T) {
	for _, p1 := range []Point{{1, 1}, {1 + 1e-12, 1}, {math.NaN(), 1}} {
		_, err := NewEdge(Point{1, 1}, p1)
		assert.True(t, errors.Is(err, ErrDegenerateEdge), "expected degenerate edge for %v", p1)
	}
}

func TestEdge_Sub(t *testing.T) {
	edge, err := NewEdge(Point{0, 0}, Point{10, 0})
	require.NoError(t, err)
	sub := edge.sub(Point{2, 0}, Point{3, 0})
	assert.Equal(t, edge.Normal(), sub.Normal())
	assert.Equal(t, Point{2, 0}, sub.P0())
	assert.Equal(t, Point{3, 0}, sub.P1())
}

func TestEdgesFromPoints(t *testing.T) {
	points := []Point{{0, 0}, {4, 0}, {4, 0}, {4, 4}, {0, 4}}
	edges := EdgesFromPoints(points)
	require.Len(t, edges, 4)
	for i, edge := range edges {
		next := edges[CircularIndex(i+1, len(edges))]
		assert.Equal(t, edge.P1(), next.P0(), "edges should chain")
	}
}

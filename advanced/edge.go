package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Directions shorter than this cannot produce a meaningful normal.
const MinEdgeLength = 1e-9

// Create a directed edge and precompute its outward normal. An edge whose
// direction is too short to normalize is rejected with ErrDegenerateEdge; the
// caller is expected to drop it.
func NewEdge(p0, p1 Point) (Edge, error) {
	direction := p1.Sub(p0)
	length := direction.Length()
	if !(length >= MinEdgeLength) { // Also catches NaN
		return Edge{}, errors.WithMessagef(ErrDegenerateEdge, "%v -> %v", p0, p1)
	}
	return Edge{
		p0:     p0,
		p1:     p1,
		normal: direction.Perp().Scale(1 / length),
	}, nil
}

// Build a sub-segment of e. Sub-segments are collinear with their parent, so
// they keep its normal rather than renormalizing a shorter (and noisier)
// direction.
func (e Edge) sub(p0, p1 Point) Edge {
	return Edge{p0: p0, p1: p1, normal: e.normal}
}

func (e Edge) P0() Point {
	return e.p0
}

func (e Edge) P1() Point {
	return e.p1
}

// Unit normal pointing out of the region, assuming counterclockwise winding.
func (e Edge) Normal() Point {
	return e.normal
}

func (e Edge) Direction() Point {
	return e.p1.Sub(e.p0)
}

func (e Edge) Length() float64 {
	return e.Direction().Length()
}

func (e Edge) String() string {
	return fmt.Sprintf("(%g, %g) -> (%g, %g)", e.p0.X, e.p0.Y, e.p1.X, e.p1.Y)
}

// Build the closed edge loop for a ring of points. Degenerate edges (repeated
// points) are skipped, so the result may have fewer edges than there are
// points.
func EdgesFromPoints(points []Point) []Edge {
	edges := make([]Edge, 0, len(points))
	for i, p := range points {
		next := points[CircularIndex(i+1, len(points))]
		edge, err := NewEdge(p, next)
		if err != nil {
			continue
		}
		edges = append(edges, edge)
	}
	return edges
}

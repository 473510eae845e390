package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Signed distance from the splitter's line, measured as N . (anchor - p).
// Positive values are in front (inside, for a counterclockwise boundary).
// Keep the operand order: flipping it flips front and back everywhere.
func PlaneDistance(p Point, splitter Edge) float64 {
	return splitter.normal.Dot(splitter.p0.Sub(p))
}

// Which side of the splitter's infinite line p lies on. Points within
// tol.Plane of the line are OnPlane.
func Classify(p Point, splitter Edge, tol Tolerances) Side {
	d := PlaneDistance(p, splitter)
	if math.Abs(d) < tol.Plane {
		return OnPlane
	}
	if d < 0 {
		return Back
	}
	return Front
}

// Where the segment a->b crosses the splitter's line, as a point and as the
// parameter t along a->b. The caller has already established that a and b are
// on opposite sides; a near-zero denominator means the classification and the
// arithmetic disagree.
func intersect(a, b Point, splitter Edge, tol Tolerances) (Point, float64, error) {
	denominator := splitter.normal.Dot(b.Sub(a))
	if math.Abs(denominator) < tol.Denominator {
		return Point{}, 0, errors.WithMessagef(ErrParallelCrossing,
			"segment (%g, %g) -> (%g, %g) against %v (denominator %g)",
			a.X, a.Y, b.X, b.Y, splitter, denominator)
	}
	t := -splitter.normal.Dot(a.Sub(splitter.p0)) / denominator
	return a.Lerp(b, t), t, nil
}

// How an edge relates to a splitting line.
type edgePlacement int

const (
	placedFront edgePlacement = iota
	placedBack
	// Both endpoints on the line; routed by comparing normals.
	coplanarFront
	coplanarBack
	// Endpoints strictly on opposite sides.
	spanning
)

func placeEdge(edge, splitter Edge, tol Tolerances) edgePlacement {
	start := Classify(edge.p0, splitter, tol)
	end := Classify(edge.p1, splitter, tol)

	switch {
	case start == OnPlane && end == OnPlane:
		// Same facing goes behind the splitter. This assumes coincident edges
		// with the same normal are the same piece of boundary.
		if edge.normal.AlmostEqual(splitter.normal, tol.Normal) {
			return coplanarBack
		}
		return coplanarFront
	case start != Back && end != Back:
		return placedFront
	case start != Front && end != Front:
		return placedBack
	}
	return spanning
}

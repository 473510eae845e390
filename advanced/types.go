package advanced

type Point struct {
	X float64
	Y float64
}

// Edges are values. Splitting an edge never modifies it; it produces two new
// edges that share the original normal.
type Edge struct {
	p0, p1 Point
	normal Point
}

// A region is a cyclic loop of points. Edge i runs from Points[i] to
// Points[(i+1)%n], and there is no closing duplicate. Regions handed back from
// a Partitioner are convex, but the type itself enforces nothing.
type Region struct {
	Points []Point
}

type RegionList []Region

// Side of a splitting line a point falls on.
type Side int

const (
	OnPlane Side = iota
	Front
	Back
)

func (s Side) String() string {
	switch s {
	case OnPlane:
		return "on"
	case Front:
		return "front"
	case Back:
		return "back"
	}
	return "invalid"
}

package advanced

import "math"

func (r *Region) Append(p Point) {
	r.Points = append(r.Points, p)
}

// Append every vertex of other, in order. Used when a whole region passes
// through a split untouched.
func (r *Region) AppendRegion(other Region) {
	r.Points = append(r.Points, other.Points...)
}

func (r Region) Len() int {
	return len(r.Points)
}

func (r Region) IsEmpty() bool {
	return len(r.Points) == 0
}

// Shoelace area. Positive for counterclockwise loops.
func (r Region) SignedArea() float64 {
	var sum float64
	for i, p := range r.Points {
		next := r.Points[CircularIndex(i+1, len(r.Points))]
		sum += p.Cross(next)
	}
	return sum / 2
}

func (r Region) Area() float64 {
	return math.Abs(r.SignedArea())
}

func (r Region) IsCCW() bool {
	return r.SignedArea() > 0
}

func (r Region) IsCW() bool {
	return r.SignedArea() < 0
}

// Area centroid. Falls back to the vertex average for zero-area loops.
func (r Region) Centroid() Point {
	if len(r.Points) == 0 {
		return Point{}
	}
	area := r.SignedArea()
	if math.Abs(area) < Epsilon {
		var sum Point
		for _, p := range r.Points {
			sum = sum.Add(p)
		}
		return sum.Scale(1 / float64(len(r.Points)))
	}
	var cx, cy float64
	for i, p := range r.Points {
		next := r.Points[CircularIndex(i+1, len(r.Points))]
		cross := p.Cross(next)
		cx += (p.X + next.X) * cross
		cy += (p.Y + next.Y) * cross
	}
	return Point{cx / (6 * area), cy / (6 * area)}
}

// Axis aligned bounding box. Empty regions report an inverted (infinite) box.
func (r Region) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range r.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// ConvexityResult describes the turn structure of a region.
type ConvexityResult struct {
	// Every non-collinear turn goes the same way.
	Convex bool
	// +1 for counterclockwise, -1 for clockwise, 0 when there are no turns.
	Winding int
}

// Walk consecutive edge pairs and check that the cross products agree in sign.
// Collinear pairs (including repeated vertices) are allowed. A loop with no
// turns at all is not convex.
func (r Region) AnalyzeConvexity() ConvexityResult {
	var result ConvexityResult
	n := len(r.Points)
	if n < 3 {
		return result
	}
	var positive, negative int
	for i := 0; i < n; i++ {
		p0 := r.Points[i]
		p1 := r.Points[CircularIndex(i+1, n)]
		p2 := r.Points[CircularIndex(i+2, n)]
		cross := p1.Sub(p0).Cross(p2.Sub(p1))
		if cross > Epsilon {
			positive++
		} else if cross < -Epsilon {
			negative++
		}
	}
	if positive == 0 && negative == 0 {
		return result
	}
	if positive > 0 && negative > 0 {
		return result
	}
	result.Convex = true
	if positive > 0 {
		result.Winding = 1
	} else {
		result.Winding = -1
	}
	return result
}

func (r Region) IsConvex() bool {
	return r.AnalyzeConvexity().Convex
}

// Even-odd point containment. Works for any simple loop, convex or not.
func (r Region) ContainsPoint(p Point) bool {
	return r.CrossingCount(p)%2 == 1
}

// Number of boundary crossings of a ray cast from p toward +X. Edges are
// half-open in Y so a ray through a vertex is counted once.
func (r Region) CrossingCount(p Point) int {
	count := 0
	for i, a := range r.Points {
		b := r.Points[CircularIndex(i+1, len(r.Points))]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if p.X < x {
			count++
		}
	}
	return count
}

func (r Region) Reverse() Region {
	reversed := Region{Points: make([]Point, 0, len(r.Points))}
	for i := len(r.Points) - 1; i >= 0; i-- {
		reversed.Append(r.Points[i])
	}
	return reversed
}

// Drop vertices that coincide with their predecessor (within tol), including
// the last vertex when it repeats the first. A loop that collapses to fewer
// than three vertices encloses nothing and comes back empty.
func (r Region) Compact(tol float64) Region {
	var result Region
	for _, p := range r.Points {
		if len(result.Points) > 0 && result.Points[len(result.Points)-1].AlmostEqual(p, tol) {
			continue
		}
		result.Append(p)
	}
	for len(result.Points) > 1 && result.Points[len(result.Points)-1].AlmostEqual(result.Points[0], tol) {
		result.Points = result.Points[:len(result.Points)-1]
	}
	if len(result.Points) < 3 {
		return Region{}
	}
	return result
}

func (list RegionList) Area() float64 {
	var sum float64
	for _, region := range list {
		sum += region.Area()
	}
	return sum
}

// Even-odd containment across the whole list. For a list of non-overlapping
// regions this is the same as asking whether any region contains p.
func (list RegionList) ContainsPoint(p Point) bool {
	count := 0
	for _, region := range list {
		count += region.CrossingCount(p)
	}
	return count%2 == 1
}

func (list RegionList) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, region := range list {
		rMin, rMax := region.Bounds()
		min.X = math.Min(min.X, rMin.X)
		min.Y = math.Min(min.Y, rMin.Y)
		max.X = math.Max(max.X, rMax.X)
		max.Y = math.Max(max.Y, rMax.Y)
	}
	return min, max
}

func (list RegionList) VertexCount() int {
	count := 0
	for _, region := range list {
		count += len(region.Points)
	}
	return count
}

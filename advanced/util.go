package advanced

import "math"

// Tolerance for comparisons that have nothing to do with a splitting line, such
// as convexity and area checks in helpers.
const Epsilon = 1e-9

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Z component of the 3D cross product
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Rotated a quarter turn clockwise. For a counterclockwise boundary this points
// out of the enclosed area.
func (p Point) Perp() Point {
	return Point{p.Y, -p.X}
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + t*(q.X-p.X), p.Y + t*(q.Y-p.Y)}
}

// Component-wise comparison within tol.
func (p Point) AlmostEqual(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) < tol && math.Abs(p.Y-q.Y) < tol
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

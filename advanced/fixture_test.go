package advanced

import (
	"embed"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each is an SVG with a single polygon, loaded counterclockwise.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Region {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	region, err := LoadSVGPolygon(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return region
}

// Some ad hoc code specified fixtures

func Square() Region {
	return Region{[]Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
}

func LShape() Region {
	return Region{[]Point{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}}
}

func SimpleStar() Region {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Region{points}
}

// A base with teeth sticking up out of it.
func Comb(teeth int) Region {
	width := float64(2*teeth - 1)
	points := []Point{{0, 0}, {width, 0}}
	for i := teeth - 1; i >= 0; i-- {
		left := float64(2 * i)
		right := left + 1
		points = append(points, Point{right, 3}, Point{left, 3})
		if i > 0 {
			points = append(points, Point{left, 1}, Point{left - 1, 1})
		}
	}
	return Region{points}
}

// A regular polygon, which is convex.
func RegularPolygon(sides int, radius float64) Region {
	var points []Point
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Region{points}
}

// Run a boundary loop through a fresh Partitioner.
func decompose(boundary Region, opts ...Option) (RegionList, *Partitioner) {
	p := NewPartitioner(opts...)
	for i, point := range boundary.Points {
		p.AddEdge(point, boundary.Points[CircularIndex(i+1, len(boundary.Points))])
	}
	return p.Compute(), p
}

func scaleRegion(r Region, k float64) Region {
	scaled := Region{Points: make([]Point, len(r.Points))}
	for i, p := range r.Points {
		scaled.Points[i] = p.Scale(k)
	}
	return scaled
}

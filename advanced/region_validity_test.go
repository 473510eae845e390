package advanced

// This contains no actual tests. It is just a helper for testing decomposition
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a decomposition is valid. The rules are:
// 1. Every region is convex and counterclockwise.
// 2. The sum of the region areas equals the area of the boundary.
// 3. Sampled points are inside some region iff they are inside the boundary,
//    and never inside more than one region.
// 4. No boundary edge passes through the interior of a region.
func AssertValidDecomposition(t *testing.T, boundary Region, regions RegionList) {
	require.NotEmpty(t, regions, "expected at least one region")
	for _, region := range regions {
		require.True(t, region.IsConvex(), "region is not convex: %v", region.Points)
		require.True(t, region.IsCCW(), "region is not counterclockwise: %v", region.Points)
	}

	area := boundary.Area()
	require.InDelta(t, area, regions.Area(), 1e-6*math.Max(1, area), "region areas must sum to the boundary area")

	validateRegionsBySampling(t, regions, boundary)
	assertNoEdgeCrossesRegion(t, regions, boundary)
}

func validateRegionsBySampling(t *testing.T, regions RegionList, boundary Region) {
	min, max := append(RegionList{boundary}, regions...).Bounds()

	// Pad the bounding box by 10%
	xPadding := (max.X - min.X) * 0.1
	yPadding := (max.Y - min.Y) * 0.1
	min.X -= xPadding
	min.Y -= yPadding
	max.X += xPadding
	max.Y += yPadding

	// An odd step count with an offset keeps samples off the (usually round)
	// coordinates of the edges.
	const steps = 53
	xStep := (max.X - min.X) / steps
	yStep := (max.Y - min.Y) / steps
	margin := 1e-7 * math.Max(max.X-min.X, max.Y-min.Y)

	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			p := Point{X: min.X + (float64(i)+0.37)*xStep, Y: min.Y + (float64(j)+0.41)*yStep}
			if nearAnyEdge(p, boundary, margin) || nearAnyRegionEdge(p, regions, margin) {
				continue
			}

			containing := 0
			for _, region := range regions {
				if region.ContainsPoint(p) {
					containing++
				}
			}
			assert.LessOrEqual(t, containing, 1, "point %v is inside more than one region", p)
			if boundary.ContainsPoint(p) {
				assert.Equal(t, 1, containing, "point %v should be in the region set", p)
			} else {
				assert.Equal(t, 0, containing, "point %v should not be in the region set", p)
			}
		}
	}
}

// Walk along each boundary edge and check that none of it lies strictly inside
// a region.
func assertNoEdgeCrossesRegion(t *testing.T, regions RegionList, boundary Region) {
	const samples = 16
	for i, a := range boundary.Points {
		b := boundary.Points[CircularIndex(i+1, len(boundary.Points))]
		for k := 0; k < samples; k++ {
			p := a.Lerp(b, (float64(k)+0.5)/samples)
			for _, region := range regions {
				assert.False(t, strictlyInsideConvex(region, p, 1e-6),
					"boundary edge %v -> %v passes through region %v", a, b, region.Points)
			}
		}
	}
}

// For a counterclockwise convex region, p is strictly inside when it is left
// of every edge by more than margin.
func strictlyInsideConvex(region Region, p Point, margin float64) bool {
	for i, a := range region.Points {
		b := region.Points[CircularIndex(i+1, len(region.Points))]
		direction := b.Sub(a)
		length := direction.Length()
		if length < Epsilon {
			continue
		}
		if direction.Cross(p.Sub(a))/length <= margin {
			return false
		}
	}
	return true
}

func nearAnyRegionEdge(p Point, regions RegionList, margin float64) bool {
	for _, region := range regions {
		if nearAnyEdge(p, region, margin) {
			return true
		}
	}
	return false
}

func nearAnyEdge(p Point, region Region, margin float64) bool {
	for i, a := range region.Points {
		b := region.Points[CircularIndex(i+1, len(region.Points))]
		if distanceToSegment(p, a, b) < margin {
			return true
		}
	}
	return false
}

func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lengthSquared := ab.Dot(ab)
	if lengthSquared == 0 {
		return p.Sub(a).Length()
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/lengthSquared))
	return p.Sub(a.Lerp(b, t)).Length()
}

// Convex decomposition of simple polygons for Go.
//
// This package takes the outline of a simple polygon, which may be
// non-convex, and splits it into a small set of non-overlapping convex
// polygons whose union is the original shape. This is what renderers that can
// only fill convex shapes need.
//
// For control over tolerances, logging, or edge-by-edge input, use the
// Partitioner in the advanced package directly.
package convexify

import "github.com/osuushi/convexify/advanced"

type Point = advanced.Point
type Region = advanced.Region
type RegionList = advanced.RegionList

// Split a closed loop of points into convex regions.
//
// The loop must be simple (no self intersections). Either winding order is
// accepted; clockwise loops are reversed first, so the output always winds
// counterclockwise. Repeated consecutive points are ignored.
//
// errorCount is the number of numerically degenerate situations that were
// recovered from; a nonzero value means the output is best effort. err is only
// set for unusable input such as NaN or infinite coordinates.
func Convexify(points []Point, opts ...advanced.Option) (result RegionList, errorCount int, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			errorCount = 0
			err = recoveredErr
		}
	}()
	advanced.MustBeFinite(points)

	loop := Region{Points: points}
	if loop.IsCW() {
		loop = loop.Reverse()
	}

	partitioner := advanced.NewPartitioner(opts...)
	for i, p := range loop.Points {
		partitioner.AddEdge(p, loop.Points[advanced.CircularIndex(i+1, len(loop.Points))])
	}
	result = partitioner.Compute()
	return result, partitioner.ErrorCount(), nil
}

package advanced

import (
	"github.com/pkg/errors"
)

// Numerical trouble during partitioning is never fatal. Each recovered case is
// wrapped around one of these sentinels with errors.WithMessagef (no stack),
// handed back up the recursion, and counted by the Partitioner. Use errors.Is
// (or errors.Cause) to tell them apart.
var (
	// Edge direction too short to normalize. Dropped, not counted.
	ErrDegenerateEdge = errors.New("degenerate edge")

	// Every vertex of a region lies on the splitting line.
	ErrPlaneAlignedRegion = errors.New("region lies entirely on splitting line")

	// An edge crosses the splitting line but is (numerically) parallel to it.
	ErrParallelCrossing = errors.New("crossing edge is parallel to splitting line")

	// The computed intersection lies outside the edge being split.
	ErrParameterOutOfRange = errors.New("intersection parameter out of range")

	// A finalized region clipped down to nothing. Logged, not counted, since a
	// degenerate sliver legitimately clips away.
	ErrEmptyRegion = errors.New("finalized region is empty")
)

// The facade uses panics for programmer errors (such as non-finite input)
// rather than threading them through the geometry code. ConvexifyError marks
// those panics so they can be told apart from real ones.
type ConvexifyError error

func fatalf(format string, args ...interface{}) {
	panic(ConvexifyError(errors.Errorf(format, args...)))
}

// Recover helper for public entry points. Call as
// HandlePanicRecover(recover()) inside a deferred function. A ConvexifyError
// is returned as an error; any other panic is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if convexifyError, ok := r.(ConvexifyError); ok {
			return convexifyError
		}
		panic(r)
	}
	return nil
}

// Panics with a ConvexifyError if any point is NaN or infinite.
func MustBeFinite(points []Point) {
	for i, p := range points {
		if !p.IsFinite() {
			fatalf("point %d is not finite: %v", i, p)
		}
	}
}

// Whether an anomaly counts toward Partitioner.ErrorCount.
func isCounted(err error) bool {
	cause := errors.Cause(err)
	return cause != ErrDegenerateEdge && cause != ErrEmptyRegion
}

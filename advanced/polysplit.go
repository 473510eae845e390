package advanced

import (
	"github.com/pkg/errors"
)

// Cut a region along the splitter's line. Vertices on the line are shared by
// both halves, and every edge that crosses the line contributes its
// intersection point to both halves.
//
// A region lying entirely on the line is degenerate: both halves come back
// empty and the anomaly is reported. A crossing that cannot be computed is
// reported and skipped, which leaves a tiny gap rather than failing.
func SplitRegion(region Region, splitter Edge, tol Tolerances) (front, back Region, anomalies []error) {
	n := len(region.Points)
	if n == 0 {
		return front, back, nil
	}

	sides := make([]Side, n)
	var frontCount, backCount int
	for i, p := range region.Points {
		sides[i] = Classify(p, splitter, tol)
		switch sides[i] {
		case Front:
			frontCount++
		case Back:
			backCount++
		}
	}

	if frontCount == 0 && backCount == 0 {
		err := errors.WithMessagef(ErrPlaneAlignedRegion, "%d vertices on %v", n, splitter)
		return front, back, []error{err}
	}
	if backCount == 0 {
		front.AppendRegion(region)
		return front, back, nil
	}
	if frontCount == 0 {
		back.AppendRegion(region)
		return front, back, nil
	}

	for i, p := range region.Points {
		side := sides[i]
		switch side {
		case Front:
			front.Append(p)
		case Back:
			back.Append(p)
		case OnPlane:
			front.Append(p)
			back.Append(p)
		}

		j := CircularIndex(i+1, n)
		nextSide := sides[j]
		if side == OnPlane || nextSide == OnPlane || side == nextSide {
			continue
		}
		x, _, err := intersect(p, region.Points[j], splitter, tol)
		if err != nil {
			anomalies = append(anomalies, err)
			continue
		}
		front.Append(x)
		back.Append(x)
	}
	return front, back, anomalies
}

// Clip region to the front half-plane of every edge in turn. Stops early once
// nothing is left.
func ClipRegion(region Region, edges []Edge, tol Tolerances) (Region, []error) {
	var anomalies []error
	for _, edge := range edges {
		if region.IsEmpty() {
			break
		}
		var errs []error
		region, _, errs = SplitRegion(region, edge, tol)
		anomalies = append(anomalies, errs...)
	}
	return region, anomalies
}

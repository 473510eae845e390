package advanced

import (
	"github.com/pkg/errors"
)

// Tally of how a candidate splitter would divide a set of edges.
type SplitScore struct {
	Front, Back int
	// Edges that would be cut in two.
	Splits int
	// Edges lying on the splitter's line. These get routed to one side by the
	// normal tie-break, but they are not strictly on either side, so they do
	// not count toward Front or Back.
	Coplanar int
}

// A splitter is only useful if it leaves something strictly on both sides.
func (s SplitScore) Qualifies() bool {
	return s.Front > 0 && s.Back > 0
}

// Whether anything lies strictly behind the splitter or crosses it.
func (s SplitScore) Divides() bool {
	return s.Back > 0 || s.Splits > 0
}

// Lower is better.
func (s SplitScore) Cost(splitPenalty int) int {
	imbalance := s.Front - s.Back
	if imbalance < 0 {
		imbalance = -imbalance
	}
	return imbalance + splitPenalty*s.Splits
}

// Count how splitter would divide edges, without building anything. Spanning
// edges whose intersection is unusable are left out of the tally; ApplySplit
// reports them when the split actually happens.
func ScoreSplit(edges []Edge, splitter Edge, tol Tolerances) SplitScore {
	var score SplitScore
	for _, edge := range edges {
		switch placeEdge(edge, splitter, tol) {
		case placedFront:
			score.Front++
		case placedBack:
			score.Back++
		case coplanarFront, coplanarBack:
			score.Coplanar++
		case spanning:
			if _, _, err := splitPoint(edge, splitter, tol); err == nil {
				score.Splits++
			}
		}
	}
	return score
}

// Divide edges between the two sides of splitter. Edges crossing the line are
// cut at the intersection: the piece starting at P0 goes to P0's side and the
// rest to the other. Crossings that cannot be computed are skipped and
// reported.
func ApplySplit(edges []Edge, splitter Edge, tol Tolerances) (front, back []Edge, anomalies []error) {
	for _, edge := range edges {
		switch placeEdge(edge, splitter, tol) {
		case placedFront, coplanarFront:
			front = append(front, edge)
		case placedBack, coplanarBack:
			back = append(back, edge)
		case spanning:
			x, _, err := splitPoint(edge, splitter, tol)
			if err != nil {
				anomalies = append(anomalies, err)
				continue
			}
			head := edge.sub(edge.p0, x)
			tail := edge.sub(x, edge.p1)
			if Classify(edge.p0, splitter, tol) == Front {
				front = append(front, head)
				back = append(back, tail)
			} else {
				back = append(back, head)
				front = append(front, tail)
			}
		}
	}
	return front, back, anomalies
}

// Intersection of a spanning edge with the splitter, with the range check on t.
func splitPoint(edge, splitter Edge, tol Tolerances) (Point, float64, error) {
	x, t, err := intersect(edge.p0, edge.p1, splitter, tol)
	if err != nil {
		return Point{}, 0, err
	}
	if t < -tol.Param || t > 1+tol.Param {
		return Point{}, 0, errors.WithMessagef(ErrParameterOutOfRange,
			"t = %g splitting %v against %v", t, edge, splitter)
	}
	return x, t, nil
}

package advanced

import (
	"context"
	"log/slog"

	"github.com/osuushi/convexify/dbg"
	"github.com/pkg/errors"
)

// A Partitioner decomposes a closed boundary into convex regions by recursive
// binary space partitioning. Register the boundary edges in winding order with
// AddEdge, then call Compute.
//
// The boundary should wind counterclockwise so that the enclosed area lies in
// front of every edge. Nothing here validates that; a clockwise boundary
// decomposes its exterior instead, which is usually nothing at all.
//
// A Partitioner is not safe for concurrent use.
type Partitioner struct {
	edges        []Edge
	tolerances   Tolerances
	splitPenalty int
	logger       *slog.Logger

	regions   RegionList
	anomalies []error
}

func NewPartitioner(opts ...Option) *Partitioner {
	p := &Partitioner{
		tolerances:   DefaultTolerances,
		splitPenalty: DefaultSplitPenalty,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register a boundary edge. An edge too short to have a direction is dropped
// without complaint.
func (p *Partitioner) AddEdge(p0, p1 Point) {
	edge, err := NewEdge(p0, p1)
	if err != nil {
		p.log().Debug("dropping edge", "error", err.Error())
		return
	}
	p.edges = append(p.edges, edge)
}

func (p *Partitioner) Edges() []Edge {
	return append([]Edge(nil), p.edges...)
}

// Decompose the registered boundary. Every call starts from scratch, so the
// error count always describes the latest result. Compute never fails: any
// numerical trouble is absorbed, logged and counted, and whatever regions
// could be built are returned.
func (p *Partitioner) Compute() RegionList {
	p.regions = nil
	p.anomalies = nil
	if len(p.edges) == 0 {
		return nil
	}

	// The root region is the boundary itself, which is usually not convex yet.
	var root Region
	for _, edge := range p.edges {
		root.Append(edge.p0)
	}

	regions, anomalies := p.partition(root, p.edges, 0)
	p.collect(anomalies)
	p.regions = regions
	return regions
}

// Log every anomaly from a run, keeping the counted ones. Errors are logged by
// message: the text handler would otherwise print the whole stack.
func (p *Partitioner) collect(anomalies []error) {
	logger := p.log()
	for _, err := range anomalies {
		if isCounted(err) {
			p.anomalies = append(p.anomalies, err)
			logger.Warn("recovered from degenerate geometry", "error", err.Error())
		} else {
			logger.Info("dropped region", "error", err.Error())
		}
	}
}

// Number of numerical anomalies recovered from during the last Compute.
// Nonzero values suggest suspect input geometry.
func (p *Partitioner) ErrorCount() int {
	return len(p.anomalies)
}

// The counted anomalies from the last Compute. Each wraps one of the Err*
// sentinels.
func (p *Partitioner) Anomalies() []error {
	return append([]error(nil), p.anomalies...)
}

// Regions from the last Compute.
func (p *Partitioner) Regions() RegionList {
	return p.regions
}

// Recursive step. Edges and regions are owned by this frame; anomalies are
// handed back to the caller rather than accumulated on the Partitioner.
func (p *Partitioner) partition(region Region, edges []Edge, depth int) (RegionList, []error) {
	splitter, score, ok := FindBestSplitter(edges, p.tolerances, p.splitPenalty)
	if !ok {
		// What's left bounds a single convex cell. Trim the region to it.
		clipped, anomalies := ClipRegion(region, edges, p.tolerances)
		clipped = clipped.Compact(p.tolerances.Plane)
		if clipped.IsEmpty() {
			err := errors.WithMessagef(ErrEmptyRegion, "%d vertices clipped by %d edges at depth %d",
				region.Len(), len(edges), depth)
			return nil, append(anomalies, err)
		}
		return RegionList{clipped}, anomalies
	}

	logger := p.log()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("splitting",
			"depth", depth,
			"splitter", dbg.Name(splitter),
			"edge", splitter.String(),
			"front", score.Front,
			"back", score.Back,
			"splits", score.Splits,
		)
	}

	frontEdges, backEdges, anomalies := ApplySplit(edges, splitter, p.tolerances)
	// Both halves of the region now end exactly on the splitter's line, so
	// edges lying on it are spent. Left in, they would clip away the very
	// side they were routed to.
	frontEdges = retireCoplanar(frontEdges, splitter, p.tolerances)
	backEdges = retireCoplanar(backEdges, splitter, p.tolerances)
	frontRegion, backRegion, regionAnomalies := SplitRegion(region, splitter, p.tolerances)
	anomalies = append(anomalies, regionAnomalies...)

	var result RegionList
	for _, side := range []struct {
		region Region
		edges  []Edge
	}{
		{frontRegion, frontEdges},
		{backRegion, backEdges},
	} {
		if side.region.IsEmpty() {
			continue
		}
		regions, sideAnomalies := p.partition(side.region, side.edges, depth+1)
		result = append(result, regions...)
		anomalies = append(anomalies, sideAnomalies...)
	}
	return result, anomalies
}

// Pick the edge whose line divides edges best: something strictly on both
// sides, then the lowest cost. Ties go to the earliest candidate.
//
// When no edge has something on both sides, an edge with anything behind it
// (or crossing it) is used instead. That only happens around reflex corners,
// where each edge lies behind the other. Returns false when no edge has
// anything behind it, meaning the edges already bound a convex cell.
func FindBestSplitter(edges []Edge, tol Tolerances, splitPenalty int) (Edge, SplitScore, bool) {
	scores := make([]SplitScore, len(edges))
	for i, candidate := range edges {
		scores[i] = ScoreSplit(edges, candidate, tol)
	}
	for _, eligible := range []func(SplitScore) bool{SplitScore.Qualifies, SplitScore.Divides} {
		if i, ok := cheapest(scores, splitPenalty, eligible); ok {
			return edges[i], scores[i], true
		}
	}
	return Edge{}, SplitScore{}, false
}

func cheapest(scores []SplitScore, splitPenalty int, eligible func(SplitScore) bool) (int, bool) {
	best, bestCost := -1, 0
	for i, score := range scores {
		if !eligible(score) {
			continue
		}
		cost := score.Cost(splitPenalty)
		if best < 0 || cost < bestCost {
			best, bestCost = i, cost
		}
	}
	return best, best >= 0
}

// Drop edges lying on the splitter's line. Filters in place.
func retireCoplanar(edges []Edge, splitter Edge, tol Tolerances) []Edge {
	live := edges[:0]
	for _, edge := range edges {
		switch placeEdge(edge, splitter, tol) {
		case coplanarFront, coplanarBack:
			continue
		}
		live = append(live, edge)
	}
	return live
}

func (p *Partitioner) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}

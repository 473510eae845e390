package main

import (
	"fmt"
	"io"
	"math"

	"github.com/osuushi/convexify/advanced"
	"github.com/osuushi/convexify/dbg"
)

type result struct {
	Polygon    advanced.Region
	Regions    advanced.RegionList
	ErrorCount int
	Anomalies  []error
}

// Decompose each polygon on its own. Clockwise polygons are reversed first so
// their interior is in front of every edge.
func decompose(polygons []advanced.Region, opts []advanced.Option) []result {
	results := make([]result, 0, len(polygons))
	for _, polygon := range polygons {
		if polygon.IsCW() {
			polygon = polygon.Reverse()
		}
		partitioner := advanced.NewPartitioner(opts...)
		for _, edge := range advanced.EdgesFromPoints(polygon.Points) {
			partitioner.AddEdge(edge.P0(), edge.P1())
		}
		regions := partitioner.Compute()
		results = append(results, result{
			Polygon:    polygon,
			Regions:    regions,
			ErrorCount: partitioner.ErrorCount(),
			Anomalies:  partitioner.Anomalies(),
		})
	}
	return results
}

func report(out io.Writer, results []result, color bool) {
	for i, r := range results {
		fmt.Fprintln(out, dbg.Heading(fmt.Sprintf("polygon %d: %d points, area %g", i, r.Polygon.Len(), r.Polygon.Area()), color))

		for _, region := range r.Regions {
			status := dbg.OK
			if !region.IsConvex() {
				status = dbg.Broken
			}
			name := dbg.Colorize(dbg.Name(region.Centroid()), status, color)
			fmt.Fprintf(out, "  %s: %d vertices, area %g\n", name, region.Len(), region.Area())
		}

		// The regions should tile the polygon exactly
		coverage := dbg.OK
		if math.Abs(r.Regions.Area()-r.Polygon.Area()) > 1e-6*math.Max(1, r.Polygon.Area()) {
			coverage = dbg.Suspect
		}
		errorStatus := dbg.OK
		if r.ErrorCount > 0 {
			errorStatus = dbg.Suspect
		}
		fmt.Fprintf(out, "  %s, %s, %s\n",
			dbg.Colorize(fmt.Sprintf("%d regions", len(r.Regions)), dbg.OK, color),
			dbg.Colorize(fmt.Sprintf("covered area %g", r.Regions.Area()), coverage, color),
			dbg.Colorize(fmt.Sprintf("%d errors", r.ErrorCount), errorStatus, color),
		)
		for _, err := range r.Anomalies {
			fmt.Fprintf(out, "    %s\n", dbg.Colorize(err.Error(), dbg.Suspect, color))
		}
	}
}

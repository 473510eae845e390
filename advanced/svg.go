package advanced

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. It parses the document,
// finds the one <polygon> element in it, and returns its points as a
// counterclockwise region. Anything else in the document is ignored.
//
// SVG's Y axis points down, so a polygon that looks counterclockwise on screen
// is clockwise here. The orientation is normalized either way.
func LoadSVGPolygon(r io.Reader) (Region, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return Region{}, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return Region{}, errors.New("no polygon element found")
	}
	if len(polygons) > 1 {
		return Region{}, errors.Errorf("expected one polygon element, found %d", len(polygons))
	}

	region, err := ParsePointList(polygons[0].Attributes["points"])
	if err != nil {
		return Region{}, err
	}
	if region.Len() < 3 {
		return Region{}, errors.Errorf("polygon has %d points, need at least 3", region.Len())
	}
	if region.IsCW() {
		region = region.Reverse()
	}
	return region, nil
}

// Parse an SVG points attribute: coordinates separated by whitespace and/or
// commas, taken in x, y pairs.
func ParsePointList(s string) (Region, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return Region{}, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}
	region := Region{Points: make([]Point, 0, len(fields)/2)}
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Region{}, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Region{}, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		region.Append(Point{x, y})
	}
	return region, nil
}

package main

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/convexify/advanced"
	"github.com/pkg/errors"
)

// Read polygons from text. Each line is a point in the form "x y" (a comma
// also works as the separator), and polygons are separated by blank lines.
// Lines starting with # are comments.
func readPolygons(in io.Reader) ([]advanced.Region, error) {
	var polygons []advanced.Region
	var current advanced.Region
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if !current.IsEmpty() {
				polygons = append(polygons, current)
				current = advanced.Region{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		current.Append(point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing polygon if any
	if !current.IsEmpty() {
		polygons = append(polygons, current)
	}
	return polygons, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected 2 coordinates, got %d in %q", len(parts), line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}

// Read input in the given format. "auto" picks SVG when the data looks like
// XML.
func readInput(in io.Reader, format string) ([]advanced.Region, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if format == "auto" {
		format = "text"
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("<")) {
			format = "svg"
		}
	}

	switch format {
	case "svg":
		region, err := advanced.LoadSVGPolygon(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return []advanced.Region{region}, nil
	case "text":
		return readPolygons(bytes.NewReader(data))
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

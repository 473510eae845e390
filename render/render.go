// Package render rasterizes convex regions to images. It fills every region
// independently, which is all a convex-only rasterizer can do, and optionally
// strokes the original outline and labels each region for debugging.
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/convexify/advanced"
	"github.com/osuushi/convexify/dbg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

type Options struct {
	// Pixels per input unit.
	Scale float64 `yaml:"scale"`
	// Blank border around the shape, in pixels.
	Padding int `yaml:"padding"`
	// Stroke width in pixels.
	LineWidth float64 `yaml:"line_width"`
	// Write each region's debug name at its centroid.
	Labels bool `yaml:"labels"`
	// Label size in points.
	FontSize float64 `yaml:"font_size"`

	Background string `yaml:"background"`
	// Region fills cycle through this list.
	Palette []string `yaml:"palette"`
	Stroke  string   `yaml:"stroke"`
	Outline string   `yaml:"outline"`
}

var DefaultOptions = Options{
	Scale:      50,
	Padding:    20,
	LineWidth:  2,
	FontSize:   12,
	Background: "#000000",
	Palette:    []string{"#1b5e20", "#2e7d32", "#388e3c", "#43a047", "#66bb6a"},
	Stroke:     "#00ffff",
	Outline:    "#ff00ff",
}

// Fill in zero fields from DefaultOptions.
func (o Options) WithDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = DefaultOptions.Scale
	}
	if o.Padding < 0 {
		o.Padding = DefaultOptions.Padding
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultOptions.LineWidth
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultOptions.FontSize
	}
	if o.Background == "" {
		o.Background = DefaultOptions.Background
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultOptions.Palette
	}
	if o.Stroke == "" {
		o.Stroke = DefaultOptions.Stroke
	}
	if o.Outline == "" {
		o.Outline = DefaultOptions.Outline
	}
	return o
}

// Draw regions onto a new context sized to fit them (and the outline, if it
// has any points). The Y axis points up, like the input coordinates.
func Draw(regions advanced.RegionList, outline advanced.Region, opts Options) (*gg.Context, error) {
	opts = opts.WithDefaults()

	bounds := append(advanced.RegionList{outline}, regions...)
	min, max := bounds.Bounds()
	if math.IsInf(min.X, 0) {
		return nil, errors.New("nothing to draw")
	}

	padding := float64(opts.Padding)
	width := int(math.Ceil(opts.Scale*(max.X-min.X) + padding*2))
	height := int(math.Ceil(opts.Scale*(max.Y-min.Y) + padding*2))
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid image size %dx%d", width, height)
	}

	c := gg.NewContext(width, height)
	c.SetHexColor(opts.Background)
	c.Clear()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-min.X, -min.Y)

	// Paths are transformed as they are built, but line widths and dashes
	// stay in pixels.
	lineWidth := opts.LineWidth

	for i, region := range regions {
		if !tracePath(c, region) {
			continue
		}
		c.SetHexColor(opts.Palette[i%len(opts.Palette)])
		c.FillPreserve()
		c.SetHexColor(opts.Stroke)
		c.SetLineWidth(lineWidth)
		c.Stroke()
	}

	if tracePath(c, outline) {
		c.SetHexColor(opts.Outline)
		c.SetLineWidth(lineWidth * 2)
		c.SetDash(6, 4)
		c.Stroke()
		c.SetDash()
	}

	if opts.Labels {
		if err := drawLabels(c, regions, opts); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func WritePNG(w io.Writer, regions advanced.RegionList, outline advanced.Region, opts Options) error {
	c, err := Draw(regions, outline, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

func SavePNG(path string, regions advanced.RegionList, outline advanced.Region, opts Options) error {
	c, err := Draw(regions, outline, opts)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print the rendering inline to w, which should be an iTerm-compatible
// terminal.
func Preview(w io.Writer, regions advanced.RegionList, outline advanced.Region, opts Options) error {
	c, err := Draw(regions, outline, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatImage(c.Image(), w), "previewing")
}

func tracePath(c *gg.Context, region advanced.Region) bool {
	if region.Len() < 2 {
		return false
	}
	c.NewSubPath()
	c.MoveTo(region.Points[0].X, region.Points[0].Y)
	for _, p := range region.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	return true
}

func drawLabels(c *gg.Context, regions advanced.RegionList, opts Options) error {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return errors.Wrap(err, "parsing label font")
	}
	c.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: opts.FontSize}))
	c.SetRGB(1, 1, 1)
	for _, region := range regions {
		if region.IsEmpty() {
			continue
		}
		centroid := region.Centroid()
		// Text has to be drawn unflipped, so go back to device space.
		x, y := c.TransformPoint(centroid.X, centroid.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(centroid), x, y, 0.5, 0.5)
		c.Pop()
	}
	return nil
}

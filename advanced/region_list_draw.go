package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// Draw the regions and print them to the terminal (iTerm only). Each region
// gets a slightly different fill so neighbours are easy to tell apart.
func (list RegionList) dbgDraw(scale float64) {
	min, max := list.Bounds()
	if math.IsInf(min.X, 0) {
		return
	}

	// Set up the context
	width := int(scale*(max.X-min.X)) + dbgDrawPadding*2
	height := int(scale*(max.Y-min.Y)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-min.X, -min.Y)

	c.SetLineWidth(2)
	for i, region := range list {
		if region.IsEmpty() {
			continue
		}
		c.MoveTo(region.Points[0].X, region.Points[0].Y)
		for _, p := range region.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		shade := 0.3 + 0.5*float64(i%5)/4
		c.SetRGB(0, shade, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SavePNG("/tmp/region_list.png")
	imgcat.CatFile("/tmp/region_list.png", os.Stdout)
}

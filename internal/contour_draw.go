package internal

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 10

// Render the hull boundary along with the point cloud it was built from, save
// it to /tmp, and cat it to the terminal.
func (c *Contour) dbgDraw(scale float64, cloud []Point) {
	points := c.Points()
	all := append(points, cloud...)

	minX, minY := all[0].X, all[0].Y
	maxX, maxY := all[0].X, all[0].Y
	for _, p := range all {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Set up the context
	width := int(scale*float64(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*float64(maxY-minY)) + dbgDrawPadding*2
	ctx := gg.NewContext(width, height)
	ctx.SetRGB(0, 0, 0)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.Fill()

	// Flip the context so the origin is at the bottom left
	ctx.Translate(0, float64(height))
	ctx.Scale(1, -1)

	// Translate for padding
	ctx.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	ctx.Scale(scale, scale)
	// Translate to min
	ctx.Translate(float64(-minX), float64(-minY))

	ctx.SetLineWidth(2)
	ctx.MoveTo(float64(points[0].X), float64(points[0].Y))
	for _, p := range points[1:] {
		ctx.LineTo(float64(p.X), float64(p.Y))
	}
	ctx.ClosePath()
	ctx.SetRGB(0, 0.5, 0)
	ctx.FillPreserve()
	ctx.SetRGB(0, 1, 1)
	ctx.Stroke()

	ctx.SetRGB(1, 1, 0)
	for _, p := range cloud {
		ctx.DrawPoint(float64(p.X), float64(p.Y), 3)
		ctx.Fill()
	}

	ctx.SavePNG("/tmp/contour.png")
	imgcat.CatFile("/tmp/contour.png", os.Stdout)
}

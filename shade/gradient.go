// seehuhn.de/go/genart - geometric raster art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shade

import (
	"math"
	"math/rand/v2"

	"seehuhn.de/go/genart"
)

// VerticalGradient darkens a base colour from top to bottom.
type VerticalGradient struct {
	Base HSV

	// Step is the decrease of the value per pixel below the top of the
	// painted column.
	Step float64

	// GlobalStep is the decrease of the value per pixel below the top of
	// the canvas.
	GlobalStep float64

	// Noise is the maximal random offset added to saturation and value.
	// Noise requires a non-nil random source.
	Noise int
}

// At returns the colour of the pixel in row y of a column which starts at
// row y0.
func (g VerticalGradient) At(rng *rand.Rand, y, y0 int) HSV {
	c := g.Base
	if g.Noise > 0 && rng != nil {
		c.S = float64(Jitter(rng, int(c.S), g.Noise))
		c.V = float64(Jitter(rng, int(c.V), g.Noise))
	}
	c.V -= float64(y-y0)*g.Step + float64(y)*g.GlobalStep
	return c.Clamp()
}

// PaintColumn paints the canvas pixels (x, y0) to (x, y1), inclusive, with
// the gradient.
func (g VerticalGradient) PaintColumn(c *genart.Canvas, rng *rand.Rand, x, y0, y1 int) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, c.Height-1)
	for y := y0; y <= y1; y++ {
		c.Set(x, y, g.At(rng, y, y0))
	}
}

// RadialGradient paints a stack of nested rectangles centred on the canvas,
// all with the aspect ratio of the canvas. The outermost rectangle is the
// canvas itself, painted in edge. Towards the centre the value increases
// linearly up to centerValue, reached by the innermost rectangle whose area
// is the canvas area divided by ratio.
func RadialGradient(c *genart.Canvas, edge HSV, centerValue, ratio float64) {
	ratio = max(ratio, 1)
	W, H := float64(c.Width), float64(c.Height)
	aspect := W / H
	h0 := math.Round(math.Sqrt(W * H / (ratio * aspect)))
	steps := H - h0 + 1
	dv := (centerValue - edge.V + 1) / steps

	cx, cy := W/2, H/2
	for y := range c.Height {
		dy := math.Abs(float64(y) + 0.5 - cy)
		for x := range c.Width {
			dx := math.Abs(float64(x) + 0.5 - cx)

			// height of the smallest rectangle containing the pixel centre
			h := math.Ceil(max(2*dy, 2*dx/aspect))
			h = Clamp(h, h0+1, H)
			c.Set(x, y, edge.WithValue(edge.V+dv*(H-h)))
		}
	}
}

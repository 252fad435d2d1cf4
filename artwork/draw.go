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

package artwork

import (
	"image/color"
	"math/rand/v2"

	"github.com/fogleman/gg"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/lattice"
	"seehuhn.de/go/geom/vec"
)

// stamp draws d at every pin, in lattice order.
func stamp(c *genart.Canvas, d genart.Drawer, pins []*lattice.Pin) {
	for _, p := range pins {
		d.Draw(c, p.Pos)
	}
}

// The shape generators (mosaic, rhombs, cubes, sticks) draw with gg on top
// of the canvas pixels. They use the canvas frame for all coordinate
// conversions.

func newContext(c *genart.Canvas) *gg.Context {
	return gg.NewContextForRGBA(c.Image())
}

// polygon fills the Cartesian polygon pts and, if line > 0, strokes its
// outline.
func polygon(dc *gg.Context, f genart.Frame, pts []vec.Vec2, fill, outline color.Color, line float64) {
	if len(pts) < 3 {
		return
	}
	for i, p := range pts {
		px := f.ToCanvas(p)
		if i == 0 {
			dc.MoveTo(px.X, px.Y)
		} else {
			dc.LineTo(px.X, px.Y)
		}
	}
	dc.ClosePath()
	dc.SetColor(fill)
	if line <= 0 {
		dc.Fill()
		return
	}
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(line)
	dc.Stroke()
}

// spread returns |x + d| for a uniformly random integer d in [-tol, tol].
func spread(rng *rand.Rand, x, tol int) int {
	if tol > 0 {
		x += rng.IntN(2*tol+1) - tol
	}
	return max(x, -x)
}

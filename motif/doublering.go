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

package motif

import (
	"math"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/shade"
	"seehuhn.de/go/geom/vec"
)

// DoubleRing is a pair of concentric rings whose thickness and brightness
// oscillate along the circumference. Every 45° sector runs from thick to
// thin or from thin to thick, alternating between sectors, while the
// colour value follows the opposite ramp. The inner ring is shifted by one
// sector, so that its thick parts sit next to the thin parts of the outer
// ring.
type DoubleRing struct {
	// Radius is the radius of the outer ring. The inner ring has radius
	// Radius/√2, rounded to whole pixels.
	Radius float64

	// Thickness is the largest dot diameter.
	Thickness float64

	// Base gives hue and saturation. The value is taken from Values.
	Base shade.HSV

	// Values is the range of colour values along a sector.
	Values shade.Range
}

const doubleRingSector = 45

// InnerRadius returns the radius of the inner ring.
func (d *DoubleRing) InnerRadius() float64 {
	return math.Round(d.Radius / math.Sqrt2)
}

// Draw draws both rings around center.
func (d *DoubleRing) Draw(c *genart.Canvas, center vec.Vec2) {
	genart.TraceArc(center, d.Radius, 0, 360, func(p vec.Vec2, angle float64) {
		d.dot(c, p, angle, 0)
	})
	genart.TraceArc(center, d.InnerRadius(), 0, 360, func(p vec.Vec2, angle float64) {
		d.dot(c, p, angle, 1)
	})
}

// Dot returns the diameter and the colour of the dot at the given angle.
// Rotate shifts the pattern by the given number of sectors.
func (d *DoubleRing) Dot(angle float64, rotate int) (width int, col shade.HSV) {
	seg := math.Floor(angle / doubleRingSector)
	from := shade.Range{seg * doubleRingSector, (seg + 1) * doubleRingSector}

	lo, hi := min(d.Values[0], d.Values[1]), max(d.Values[0], d.Values[1])
	widths := shade.Range{d.Thickness, 1}
	values := shade.Range{lo, hi}
	if (int(seg)+rotate)%2 != 0 {
		widths = shade.Range{1, d.Thickness}
		values = shade.Range{hi, lo}
	}

	width = max(1, shade.ScaleRound(angle, from, widths))
	v := float64(shade.ScaleRound(angle, from, values))
	return width, d.Base.WithValue(v)
}

func (d *DoubleRing) dot(c *genart.Canvas, p vec.Vec2, angle float64, rotate int) {
	width, col := d.Dot(angle, rotate)
	if width == 1 {
		c.PlotCartesian(p, col)
		return
	}
	c.FillCircle(p, float64(width)/2, col)
}

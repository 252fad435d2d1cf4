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

package genart

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ArcSpec describes a circular arc in Cartesian space.
// Angles are in degrees, counter-clockwise from the positive x-axis.
type ArcSpec struct {
	Center vec.Vec2
	Radius float64
	Start  float64
	End    float64

	// Width is the thickness of the arc in pixels. Values below 1 are
	// treated as 1.
	Width float64

	Color color.Color

	// Antialias softens the edges of the arc by first drawing a slightly
	// darker arc at full width, followed by a narrower arc in Color.
	Antialias bool
}

// NormalizeSweep returns an end angle which is not smaller than start.
// An end below start is moved up by the smallest number of whole turns
// which brings it to or above start. An end at or above start is returned
// unchanged, so sweeps of a full turn or more are kept.
func NormalizeSweep(start, end float64) (float64, float64) {
	if end >= start {
		return start, end
	}
	d := math.Mod(end-start, 360)
	if d < 0 {
		d += 360
	}
	return start, start + d
}

// ArcStep returns the angular step, in degrees, which advances a point on a
// circle of the given radius by a quarter pixel.
func ArcStep(radius float64) float64 {
	return 0.25 * 180 / (math.Pi * max(1, radius))
}

// TraceArc calls fn for each sample point of the arc around center, in
// order of increasing angle. The end angle is included when the sweep is an
// exact multiple of the step. If start equals end, fn is called once.
func TraceArc(center vec.Vec2, radius, start, end float64, fn func(p vec.Vec2, angle float64)) {
	start, end = NormalizeSweep(start, end)
	step := ArcStep(radius)
	const eps = 1e-9
	for i := 0; ; i++ {
		a := start + float64(i)*step
		if a > end+eps {
			break
		}
		fn(PolarToCartesian(Polar{Angle: a, Radius: radius}, center), a)
	}
}

// DrawArc plots the arc described by spec.
func (c *Canvas) DrawArc(spec ArcSpec) {
	col := spec.Color
	if col == nil {
		col = color.Black
	}
	w := max(spec.Width, 1)
	if !spec.Antialias {
		c.DrawThickArc(spec.Center, spec.Radius, spec.Start, spec.End, w, col)
		return
	}
	c.DrawThickArc(spec.Center, spec.Radius, spec.Start, spec.End, w, darkenThird(col))
	c.DrawThickArc(spec.Center, spec.Radius, spec.Start, spec.End, max(w-2, 1), col)
}

// DrawThinArc plots a one pixel wide arc.
func (c *Canvas) DrawThinArc(center vec.Vec2, radius, start, end float64, col color.Color) {
	TraceArc(center, radius, start, end, func(p vec.Vec2, _ float64) {
		c.PlotCartesian(p, col)
	})
}

// DrawThickArc plots concentric thin arcs for every integer radius between
// radius-width/2 and radius+width/2, both rounded.
func (c *Canvas) DrawThickArc(center vec.Vec2, radius, start, end, width float64, col color.Color) {
	if width <= 1 {
		c.DrawThinArc(center, radius, start, end, col)
		return
	}
	lo := int(math.Round(radius - width/2))
	hi := int(math.Round(radius + width/2))
	for r := lo; r <= hi; r++ {
		if r < 0 {
			continue
		}
		c.DrawThinArc(center, float64(r), start, end, col)
	}
}

// darkenThird reduces the HSV value of col by a third, rounded down to whole
// percent, but not below 1%. Hue and saturation are unchanged.
func darkenThird(col color.Color) color.Color {
	rgba := toRGBA(col)
	m := max(rgba.R, rgba.G, rgba.B)
	if m == 0 {
		return rgba
	}
	v := int(math.Round(float64(m) * 100 / 255))
	nv := max(1, v-v/3)
	f := float64(nv) / (float64(m) * 100 / 255)
	scale := func(x uint8) uint8 {
		return uint8(min(255, math.Round(float64(x)*f)))
	}
	return color.RGBA{R: scale(rgba.R), G: scale(rgba.G), B: scale(rgba.B), A: rgba.A}
}

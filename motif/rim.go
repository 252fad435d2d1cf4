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
	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/shade"
	"seehuhn.de/go/geom/vec"
)

// Rim is a pseudo-3D ring sector. It is drawn as a stack of sectors which
// get thinner and brighter towards the top, each with darkened ends, and
// is topped by a thin flare.
type Rim struct {
	Radius float64
	Width  float64

	// Steps is the number of stacked sectors. The width decreases linearly
	// from Width to TopWidth, the value from Contrast to 100.
	Steps    int
	TopWidth float64
	Contrast float64

	// Color gives hue and saturation of the sectors.
	Color shade.HSV

	// ShadowBand is the angle, in degrees, of the darkened ends.
	ShadowBand float64

	// Flare is the colour of the 1 pixel highlight at Radius - Width/2.
	// FlareInset shortens the highlight at both ends.
	Flare      shade.HSV
	FlareInset float64
}

// shadowRatio scales the value of the darkened sector ends.
const shadowRatio = 0.75

// Draw draws the rim around center, from angle start to angle end.
func (r *Rim) Draw(c *genart.Canvas, center vec.Vec2, start, end float64) {
	start, end = genart.NormalizeSweep(start, end)
	steps := max(r.Steps, 2)
	dw := (r.Width - r.TopWidth) / float64(steps-1)
	dv := (100 - r.Contrast) / float64(steps-1)

	outer, width, v := r.Radius, r.Width, r.Contrast
	for range steps {
		face := r.Color.WithValue(v)
		shadow := r.Color.WithValue(float64(int(shadowRatio * v)))
		inner := outer - width
		c.Fill(genart.Sector(center, inner, outer, start, end), genart.NonZero, face)
		if band := min(r.ShadowBand, (end-start)/2); band > 0 {
			c.Fill(genart.Sector(center, inner, outer, start, start+band), genart.NonZero, shadow)
			c.Fill(genart.Sector(center, inner, outer, end-band, end), genart.NonZero, shadow)
		}
		width -= dw
		outer -= dw / 2
		v += dv
	}

	if end-start > 2*r.FlareInset {
		fr := r.Radius - float64(int(r.Width)/2)
		c.Fill(genart.Sector(center, fr, fr+1, start+r.FlareInset, end-r.FlareInset), genart.NonZero, r.Flare)
	}
}

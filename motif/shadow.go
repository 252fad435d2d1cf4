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
	"image/color"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/lattice"
	"seehuhn.de/go/genart/shade"
	"seehuhn.de/go/geom/vec"
)

// shadowInset is the angle, in degrees, by which a ring shadow is shorter
// than the restored arc at either end.
const shadowInset = 5

// RingShadow stipples a crescent of dots just outside a restored ring arc.
// The arc is split into zones of two degrees each. The stippled disc of
// each zone grows from a radius of 2 to MaxLen*Radius over the first half
// of the arc and then shrinks again.
type RingShadow struct {
	// Radius is the outer radius of the ring.
	Radius float64

	// MaxLen is the largest zone radius, as a fraction of Radius.
	MaxLen float64

	// Cross is the angle by which the restored arcs are shortened.
	Cross float64

	Color color.Color

	// Sampler places the dots of a zone. If nil, [shade.StippleUniform]
	// is used.
	Sampler shade.Sampler
}

// Draw stipples the shadow of quadrant q of the ring around center.
func (s *RingShadow) Draw(c *genart.Canvas, rng *rand.Rand, center vec.Vec2, q Quadrant) {
	start, end, err := QuadrantArc(q, s.Cross)
	if err != nil {
		return
	}
	start += shadowInset
	end -= shadowInset
	sweep := end - start
	zones := int(math.Floor(sweep / 2))
	if zones <= 0 {
		return
	}

	sample := s.Sampler
	if sample == nil {
		sample = shade.StippleUniform
	}

	const r0 = 2.0
	r1 := s.Radius * s.MaxLen
	rStep := (r1 - r0) / (float64(zones) / 2)
	angStep := sweep / float64(zones)

	zoneR := r0
	angle := start
	for i := range zones + 1 {
		zr := max(zoneR, 0)
		zc := genart.PolarToCartesian(genart.Polar{Angle: angle, Radius: zr + s.Radius}, center)
		if zr == 0 {
			c.PlotCartesian(zc, s.Color)
		} else {
			n := int(max(1, zr*zr))
			for _, d := range sample(rng, zr, n) {
				c.PlotCartesian(vec.Vec2{X: zc.X + float64(d.X), Y: zc.Y + float64(d.Y)}, s.Color)
			}
		}

		if i < zones/2 {
			zoneR += rStep
		} else {
			zoneR -= rStep
		}
		angle += angStep
	}
}

// GapShadow stipples a blob into the gap to the right of every ring. The
// same set of dots is used for all gaps.
type GapShadow struct {
	// Radius is the outer radius of the rings.
	Radius float64

	// GapSide is the width of the gap between two rings, see [GapSide].
	GapSide float64

	Color color.Color

	// Sampler places the dots. If nil, [shade.StippleUniform] is used.
	Sampler shade.Sampler
}

// BlobRadius returns the radius of the stippled disc.
func (s *GapShadow) BlobRadius() float64 {
	return math.RoundToEven(math.Floor(s.GapSide/2) * 1.2)
}

// Draw stipples the gaps next to all pins.
func (s *GapShadow) Draw(c *genart.Canvas, rng *rand.Rand, pins []*lattice.Pin) {
	sample := s.Sampler
	if sample == nil {
		sample = shade.StippleUniform
	}
	r := s.BlobRadius()
	dots := sample(rng, r, int(max(1, 8*r*r)))

	dx := s.Radius + math.Floor(s.GapSide/2)
	for _, p := range pins {
		if p == nil {
			continue
		}
		gc := vec.Vec2{X: p.Pos.X + dx, Y: p.Pos.Y}
		for _, d := range dots {
			c.PlotCartesian(vec.Vec2{X: gc.X + float64(d.X), Y: gc.Y + float64(d.Y)}, s.Color)
		}
	}
}

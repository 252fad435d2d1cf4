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
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/geom/vec"
)

// Role tells whether a band of a ring is painted in the stripe or in the
// space colour.
type Role int

const (
	Stripe Role = iota
	Space
)

func (r Role) String() string {
	if r == Stripe {
		return "stripe"
	}
	return "space"
}

// Band is an annulus of a striped ring. It covers the pixel radii r with
// Inner <= r < Outer.
type Band struct {
	Inner, Outer float64
	Role         Role
}

// Width returns the thickness of the band.
func (b Band) Width() float64 {
	return b.Outer - b.Inner
}

// RingDistribution lists the bands of a striped ring, outermost first.
// Distributions are computed once and shared by all rings of an artwork.
type RingDistribution struct {
	Bands []Band

	// Radius is the outer radius of the ring.
	Radius float64

	// StripeWidth is the width of a single stripe.
	StripeWidth float64

	// Hub is the radius of the filled disc in the centre of the ring, or 0.
	Hub float64

	// PinDistance is the distance of neighbouring rings in a plain lattice.
	// It is zero if the distribution does not determine a lattice.
	PinDistance float64
}

// NewRingDistribution returns a ring of the given number of stripes where
// stripes and spaces all have the same whole-pixel width. The outer radius
// is 2*stripes*width, and the innermost space is left open.
func NewRingDistribution(stripes, width int) (*RingDistribution, error) {
	if stripes < 2 || width < 1 {
		return nil, fmt.Errorf("%w: %d stripes of width %d", ErrInvalidRing, stripes, width)
	}
	radius := 2 * stripes * width
	d := &RingDistribution{
		Radius:      float64(radius),
		StripeWidth: float64(width),
		PinDistance: float64(radius + width - 2),
	}

	outer := radius
	for i := range stripes {
		d.Bands = append(d.Bands, Band{Inner: float64(outer - width), Outer: float64(outer), Role: Stripe})
		outer -= width
		if i == stripes-1 {
			break
		}
		d.Bands = append(d.Bands, Band{Inner: float64(outer - width), Outer: float64(outer), Role: Space})
		outer -= width
	}
	return d, nil
}

// NewRatioDistribution returns a ring of outer radius radius with the given
// number of stripes, where each space is ratio times as wide as a stripe.
// Widths are truncated to whole pixels. A hub of 3/4 of the stripe width
// fills the centre.
func NewRatioDistribution(radius float64, stripes int, ratio float64) (*RingDistribution, error) {
	if stripes < 2 || !(radius > 0) || !(ratio > 0) || math.IsInf(radius, 0) || math.IsInf(ratio, 0) {
		return nil, fmt.Errorf("%w: radius %g, %d stripes, ratio %g", ErrInvalidRing, radius, stripes, ratio)
	}
	spaces := float64(stripes - 1)
	w := math.Trunc(radius / (float64(stripes) + spaces*ratio + ratio))
	if w < 1 {
		return nil, fmt.Errorf("%w: stripes narrower than a pixel", ErrInvalidRing)
	}
	s := math.Trunc(w * ratio)

	d := &RingDistribution{
		Radius:      radius,
		StripeWidth: w,
		Hub:         w * 0.75,
	}
	outer := radius
	for range stripes {
		d.Bands = append(d.Bands, Band{Inner: outer - w, Outer: outer, Role: Stripe})
		outer -= w
		if s > 0 {
			d.Bands = append(d.Bands, Band{Inner: outer - s, Outer: outer, Role: Space})
		}
		outer -= s
	}
	return d, nil
}

// StripedRing draws the bands of a ring distribution.
type StripedRing struct {
	Dist *RingDistribution

	Stripe color.Color
	Space  color.Color

	// Antialias softens the edges of every band.
	Antialias bool
}

// DrawArc draws the part of the ring between the angles start and end,
// outermost band first, followed by the hub.
func (r *StripedRing) DrawArc(c *genart.Canvas, center vec.Vec2, start, end float64) {
	for _, b := range r.Dist.Bands {
		col := r.Stripe
		if b.Role == Space {
			col = r.Space
		}
		if r.Antialias {
			c.DrawArc(genart.ArcSpec{
				Center:    center,
				Radius:    (b.Inner + b.Outer) / 2,
				Start:     start,
				End:       end,
				Width:     b.Width(),
				Color:     col,
				Antialias: true,
			})
			continue
		}
		for rad := math.Ceil(b.Inner); rad < b.Outer; rad++ {
			c.DrawThinArc(center, rad, start, end, col)
		}
	}
	if r.Dist.Hub > 0 {
		c.FillCircle(center, r.Dist.Hub, r.Stripe)
	}
}

// Draw draws the full ring.
func (r *StripedRing) Draw(c *genart.Canvas, center vec.Vec2) {
	r.DrawArc(c, center, 0, 360)
}

// GapSide returns the width of the gap between two rings of the given
// radius whose lens-shaped overlap is seen from each centre under the angle
// 2*cross, in degrees.
func GapSide(radius, cross float64) float64 {
	return 2 * math.Tan(cross*math.Pi/180) * radius
}

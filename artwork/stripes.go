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
	"image"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/lattice"
	"seehuhn.de/go/genart/motif"
	"seehuhn.de/go/genart/shade"
)

// Stripes is a square lattice of large striped rings which overlap their
// neighbours in all directions. The rings show alternately their upper and
// lower halves, so that they appear woven into each other.
type Stripes struct {
	Size Size `toml:"size"`

	Stripes     int `toml:"stripes"`
	StripeWidth int `toml:"stripe_width"`

	Background shade.HSV `toml:"background"`
	Ring       shade.HSV `toml:"ring"`
	Stripe     shade.HSV `toml:"stripe"`

	Antialias bool `toml:"antialias"`
}

// DefaultStripes returns the default parameters.
func DefaultStripes() *Stripes {
	return &Stripes{
		Size:        Size{1400, 800},
		Stripes:     5,
		StripeWidth: 20,
		Background:  shade.HSV{H: 26, S: 21, V: 84},
		Ring:        shade.HSV{H: 26, S: 21, V: 84},
		Stripe:      shade.HSV{H: 184, S: 34, V: 20},
	}
}

func (a *Stripes) Name() string { return "stripes" }

func (a *Stripes) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if err := atLeast("stripes", a.Stripes, 2); err != nil {
		return err
	}
	if err := atLeast("stripe_width", a.StripeWidth, 1); err != nil {
		return err
	}
	return positive("ring radius", float64(2*a.Stripes*a.StripeWidth))
}

func (a *Stripes) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	dist, err := motif.NewRingDistribution(a.Stripes, a.StripeWidth)
	if err != nil {
		return nil, err
	}
	g, err := lattice.Generate(image.Pt(a.Size.Width, a.Size.Height), dist.PinDistance, lattice.Plain)
	if err != nil {
		return nil, err
	}
	genart.Logger().Debug("pins", "artwork", a.Name(), "count", g.Len(), "distance", dist.PinDistance)

	c := genart.NewCanvas(a.Size.Width, a.Size.Height, a.Background)
	ring := &motif.StripedRing{Dist: dist, Stripe: a.Stripe, Space: a.Ring, Antialias: a.Antialias}
	motif.FlipFlop{}.Render(c, g, ring)
	return c, nil
}

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
	"fmt"
	"image"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/lattice"
	"seehuhn.de/go/genart/motif"
	"seehuhn.de/go/genart/shade"
)

// Diamonds places double rings on the diagonals of a square lattice. The
// lattice spacing equals the radius of the inner rings, so that the outer
// rings of diagonal neighbours touch and form a pattern of diamonds.
type Diamonds struct {
	Size Size `toml:"size"`

	// Radius is the radius of the outer rings.
	Radius float64 `toml:"radius"`

	// Thickness is the largest width of a ring.
	Thickness float64 `toml:"thickness"`

	Background shade.HSV `toml:"background"`

	// Ring gives hue and saturation of the rings. The value varies
	// between the two entries of Values.
	Ring   shade.HSV   `toml:"ring"`
	Values shade.Range `toml:"values"`
}

// DefaultDiamonds returns the default parameters.
func DefaultDiamonds() *Diamonds {
	return &Diamonds{
		Size:       Size{1400, 900},
		Radius:     100,
		Thickness:  5,
		Background: shade.HSV{H: 26, S: 21, V: 100},
		Ring:       shade.HSV{H: 380, S: 90, V: 20},
		Values:     shade.Range{20, 98},
	}
}

func (a *Diamonds) Name() string { return "diamonds" }

func (a *Diamonds) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if err := positive("radius", a.Radius); err != nil {
		return err
	}
	if a.Radius < 2 {
		return fmt.Errorf("%w: radius %g too small", ErrInvalidConfig, a.Radius)
	}
	if err := positive("thickness", a.Thickness); err != nil {
		return err
	}
	for _, v := range a.Values {
		if !(v >= 0 && v <= 100) {
			return fmt.Errorf("%w: colour value %g", ErrInvalidConfig, v)
		}
	}
	return nil
}

func (a *Diamonds) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	ring := &motif.DoubleRing{
		Radius:    a.Radius,
		Thickness: a.Thickness,
		Base:      a.Ring.Clamp(),
		Values:    a.Values,
	}
	g, err := lattice.Generate(image.Pt(a.Size.Width, a.Size.Height), ring.InnerRadius(), lattice.Diagonal)
	if err != nil {
		return nil, err
	}
	genart.Logger().Debug("pins", "artwork", a.Name(), "count", g.Len())

	c := genart.NewCanvas(a.Size.Width, a.Size.Height, a.Background)
	stamp(c, ring, g.Pins())
	return c, nil
}

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

// Crosses is a square lattice of crosses made of two sine waves, on a
// background which brightens from the edges towards the centre.
type Crosses struct {
	// Size is the requested canvas size. The canvas is cut down to a
	// multiple of Side in both directions.
	Size Size `toml:"size"`

	Side float64 `toml:"side"`
	Pen  float64 `toml:"pen"`

	// Color is the colour of the crosses. Its value is also the value of
	// the background at the canvas edge.
	Color shade.HSV `toml:"color"`

	// Background gives the value of the background at the centre.
	Background shade.HSV `toml:"background"`
}

// DefaultCrosses returns the default parameters.
func DefaultCrosses() *Crosses {
	return &Crosses{
		Size:       Size{1400, 800},
		Side:       80,
		Pen:        10,
		Color:      shade.HSV{H: 18, S: 55, V: 15},
		Background: shade.HSV{H: 0, S: 0, V: 100},
	}
}

func (a *Crosses) Name() string { return "crosses" }

func (a *Crosses) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if err := positive("side", a.Side); err != nil {
		return err
	}
	if err := positive("pen", a.Pen); err != nil {
		return err
	}
	if w, h := a.CanvasSize(); w == 0 || h == 0 {
		return fmt.Errorf("%w: side %g larger than canvas", ErrInvalidConfig, a.Side)
	}
	return nil
}

// CanvasSize returns the size of the rendered canvas.
func (a *Crosses) CanvasSize() (width, height int) {
	side := int(a.Side)
	if side < 1 {
		return 0, 0
	}
	return a.Size.Width / side * side, a.Size.Height / side * side
}

func (a *Crosses) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	w, h := a.CanvasSize()
	g, err := lattice.Generate(image.Pt(w, h), a.Side, lattice.Plain)
	if err != nil {
		return nil, err
	}
	genart.Logger().Debug("pins", "artwork", a.Name(), "count", g.Len(), "width", w, "height", h)

	c := genart.NewCanvas(w, h, a.Background)
	shade.RadialGradient(c, a.Color, a.Background.V, 2)
	cross := &motif.Cross{Side: a.Side, Pen: a.Pen, Color: a.Color}
	stamp(c, cross, g.Pins())
	return c, nil
}

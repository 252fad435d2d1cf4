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
	"image/color"

	"golang.org/x/image/font/basicfont"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/lattice"
	"seehuhn.de/go/genart/motif"
	"seehuhn.de/go/genart/shade"
)

// Hexagons places hexagon outlines on vertical zig-zag chains. Along each
// row of centres the hexagons show alternately their even and their odd
// sides, which joins them into a continuous band.
type Hexagons struct {
	Size Size `toml:"size"`

	// Step is the lattice unit. Zig-zag segments are three steps long and
	// the hexagons have a radius of two steps.
	Step float64 `toml:"step"`

	// Rod is the width of the hexagon sides.
	Rod float64 `toml:"rod"`

	Background shade.HSV `toml:"background"`
	Border     shade.HSV `toml:"border"`
	Core       shade.HSV `toml:"core"`

	// Labels writes the symmetric column and row of every hexagon at its
	// centre.
	Labels bool `toml:"labels"`
}

// DefaultHexagons returns the default parameters.
func DefaultHexagons() *Hexagons {
	return &Hexagons{
		Size:       Size{1400, 900},
		Step:       30,
		Rod:        10,
		Background: shade.HSV{H: 26, S: 21, V: 0},
		Border:     shade.HSV{H: 60, S: 100, V: 100},
		Core:       shade.HSV{H: 120, S: 100, V: 50.2},
	}
}

func (a *Hexagons) Name() string { return "hexagons" }

func (a *Hexagons) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if err := positive("step", a.Step); err != nil {
		return err
	}
	if a.Step < 1 {
		return fmt.Errorf("%w: step %g too small", ErrInvalidConfig, a.Step)
	}
	return positive("rod", a.Rod)
}

func (a *Hexagons) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	g, err := lattice.Generate(image.Pt(a.Size.Width, a.Size.Height), a.Step, lattice.ZigZag)
	if err != nil {
		return nil, err
	}
	genart.Logger().Debug("pins", "artwork", a.Name(), "count", g.Len(), "rows", g.NumRows())

	c := genart.NewCanvas(a.Size.Width, a.Size.Height, a.Background)
	hex := &motif.Hexagon{
		Radius: 2 * a.Step,
		Rod:    a.Rod,
		Border: a.Border,
		Core:   a.Core,
	}
	rows := g.Rows()
	for i := len(rows) - 1; i >= 0; i-- {
		for _, p := range rows[i] {
			which := motif.EvenSegments
			if p.Col%2 == 1 {
				which = motif.OddSegments
			}
			hex.Draw(c, p.Pos, which)
		}
	}
	if a.Labels {
		drawLabels(c, g.Pins())
	}
	return c, nil
}

// drawLabels writes "col:row" next to every pin, with the top left corner
// of the text at the pin position.
func drawLabels(c *genart.Canvas, pins []*lattice.Pin) {
	dc := newContext(c)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(color.White)
	for _, p := range pins {
		px := c.ToCanvas(p.Pos)
		dc.DrawStringAnchored(fmt.Sprintf("%d:%d", p.SymCol, p.SymRow), px.X, px.Y, 0, 1)
	}
}

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
	"seehuhn.de/go/genart/shade"
	"seehuhn.de/go/geom/vec"
)

// Cubes tiles the canvas with isometric cubes, each showing a left, a top
// and a right face.
type Cubes struct {
	Size Size `toml:"size"`

	// LongDiag and ShortDiag are the diagonals of the top face, Height is
	// the height of the vertical edges.
	LongDiag  float64 `toml:"long_diag"`
	ShortDiag float64 `toml:"short_diag"`
	Height    float64 `toml:"height"`

	Line      float64   `toml:"line"`
	LineColor shade.HSV `toml:"line_color"`

	Left  shade.HSL `toml:"left"`
	Top   shade.HSL `toml:"top"`
	Right shade.HSL `toml:"right"`

	// RandomHue replaces the hue of all three faces of a cube by a random
	// hue in [20, 355].
	RandomHue bool `toml:"random_hue"`

	Background shade.HSV `toml:"background"`
}

// DefaultCubes returns the default parameters.
func DefaultCubes() *Cubes {
	return &Cubes{
		Size:      Size{1200, 840},
		LongDiag:  120,
		ShortDiag: 60,
		Height:    65,
		Line:      1,
		Left:      shade.HSL{H: 200, S: 75, L: 25},
		Top:       shade.HSL{H: 223, S: 75, L: 50},
		Right:     shade.HSL{H: 223, S: 75, L: 35},
		RandomHue: true,
	}
}

func (a *Cubes) Name() string { return "cubes" }

func (a *Cubes) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if err := positive("long_diag", a.LongDiag); err != nil {
		return err
	}
	if err := positive("short_diag", a.ShortDiag); err != nil {
		return err
	}
	if err := positive("height", a.Height); err != nil {
		return err
	}
	if a.ShortDiag >= a.LongDiag {
		return fmt.Errorf("%w: short diagonal %g not shorter than long diagonal %g",
			ErrInvalidConfig, a.ShortDiag, a.LongDiag)
	}
	if a.Line < 0 {
		return fmt.Errorf("%w: line = %g", ErrInvalidConfig, a.Line)
	}
	return nil
}

// Faces returns the left, top and right face of the cube whose lowest
// corner is at p0.
func (a *Cubes) Faces(p0 vec.Vec2) [3][]vec.Vec2 {
	p5 := p0.Add(vec.Vec2{Y: a.Height})
	p3 := p5.Add(vec.Vec2{Y: a.ShortDiag})
	p2 := p5.Add(vec.Vec2{X: -a.LongDiag / 2, Y: a.ShortDiag / 2})
	p4 := p2.Add(vec.Vec2{X: a.LongDiag})
	p1 := p2.Sub(vec.Vec2{Y: a.Height})
	p6 := p4.Sub(vec.Vec2{Y: a.Height})
	return [3][]vec.Vec2{
		{p0, p1, p2, p5},
		{p5, p2, p3, p4},
		{p0, p5, p4, p6},
	}
}

// Bases returns the lowest corners of all cubes. They lie on an offset
// lattice, stretched vertically so that the rows of cubes fit together.
func (a *Cubes) Bases() ([]vec.Vec2, error) {
	g, err := lattice.Generate(image.Pt(a.Size.Width, a.Size.Height), a.LongDiag, lattice.Offset)
	if err != nil {
		return nil, err
	}
	rowStep := a.Height + a.ShortDiag/2
	res := make([]vec.Vec2, 0, g.Len())
	for _, p := range g.Pins() {
		res = append(res, vec.Vec2{X: p.Pos.X, Y: float64(p.SymRow-1) * rowStep})
	}
	return res, nil
}

func (a *Cubes) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	bases, err := a.Bases()
	if err != nil {
		return nil, err
	}
	genart.Logger().Debug("cubes", "artwork", a.Name(), "count", len(bases))

	rng := newRand(seed)
	c := genart.NewCanvas(a.Size.Width, a.Size.Height, a.Background)
	dc := newContext(c)
	for _, p0 := range bases {
		colors := [3]shade.HSL{a.Left, a.Top, a.Right}
		if a.RandomHue {
			h := float64(20 + rng.IntN(336))
			for i := range colors {
				colors[i].H = h
			}
		}
		for i, face := range a.Faces(p0) {
			polygon(dc, c.Frame, face, colors[i].Clamp(), a.LineColor, a.Line)
		}
	}
	return c, nil
}

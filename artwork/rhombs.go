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
	"image/color"
	"math"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/shade"
	"seehuhn.de/go/geom/vec"
)

// Rhombs fills a grid of square cells with rhombi along the falling
// diagonal. Near the centre the rhombi are thin; they widen into full
// squares at half the canvas height from the centre. The lightness is
// largest at the centre and at the rim, with a dark ring in between.
type Rhombs struct {
	Size Size `toml:"size"`

	Cell int `toml:"cell"`

	// Color gives hue and saturation of the rhombi. The lightness is
	// clamped to Light.
	Color shade.HSL   `toml:"color"`
	Light shade.Range `toml:"light"`

	Background shade.HSV `toml:"background"`
}

// DefaultRhombs returns the default parameters.
func DefaultRhombs() *Rhombs {
	return &Rhombs{
		Size:  Size{900, 900},
		Cell:  25,
		Color: shade.HSL{H: 380, S: 30, L: 51},
		Light: shade.Range{1, 80},
	}
}

func (a *Rhombs) Name() string { return "rhombs" }

func (a *Rhombs) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if err := atLeast("cell", a.Cell, 1); err != nil {
		return err
	}
	if a.Size.Height < 2 {
		return fmt.Errorf("%w: canvas height %d", ErrInvalidConfig, a.Size.Height)
	}
	return nil
}

// maxRhombTilt is the largest inset of the rhombus corners, relative to
// the cell size.
const maxRhombTilt = 0.5

// Rhomb returns the corners of the rhombus in the cell (col, row), counted
// from the top left of the canvas, together with its lightness.
func (a *Rhombs) Rhomb(f genart.Frame, col, row int) ([]vec.Vec2, float64) {
	side := float64(a.Cell)
	tl := genart.Pixel{X: float64(col * a.Cell), Y: float64(row * a.Cell)}
	mid := genart.Pixel{X: tl.X + side/2, Y: tl.Y + side/2}

	half := float64(a.Size.Height) / 2
	dist := math.Floor(math.Hypot(mid.X-float64(a.Size.Width)/2, mid.Y-half))
	tilt := min(maxRhombTilt, dist*maxRhombTilt/half)
	d := math.Floor(tilt * side)

	lo, hi := min(a.Light[0], a.Light[1]), max(a.Light[0], a.Light[1])
	light := shade.Clamp(math.Abs(half-dist)*100/half, lo, hi)

	corners := []genart.Pixel{
		tl,
		{X: tl.X + side - d, Y: tl.Y + d},
		{X: tl.X + side, Y: tl.Y + side},
		{X: tl.X + d, Y: tl.Y + side - d},
	}
	pts := make([]vec.Vec2, len(corners))
	for i, px := range corners {
		pts[i] = f.ToCartesian(px)
	}
	return pts, light
}

func (a *Rhombs) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	c := genart.NewCanvas(a.Size.Width, a.Size.Height, a.Background)
	dc := newContext(c)
	for row := range a.Size.Height/a.Cell + 1 {
		for col := range a.Size.Width/a.Cell + 1 {
			pts, light := a.Rhomb(c.Frame, col, row)
			hsl := a.Color
			hsl.L = light
			polygon(dc, c.Frame, pts, hsl.Clamp(), color.Transparent, 0)
		}
	}
	return c, nil
}

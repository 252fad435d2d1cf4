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
	"math/rand/v2"

	"github.com/fogleman/gg"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/shade"
)

// Mosaic covers the canvas with layers of randomly distorted squares. Each
// layer uses larger squares, leaves a wider margin and skips about two
// thirds of its cells.
type Mosaic struct {
	Size Size `toml:"size"`

	Layers int `toml:"layers"`

	// Side is the square size of the first layer. Every further layer
	// adds SideStep.
	Side     int `toml:"side"`
	SideStep int `toml:"side_step"`

	// Margin is the number of cells each layer leaves empty, in addition
	// to the previous layer, at the canvas edges.
	Margin int `toml:"margin"`

	// Decimation keeps one cell in this many, on average.
	Decimation int `toml:"decimation"`

	// Jitter is the maximal random displacement of a square corner.
	Jitter int `toml:"jitter"`

	Background shade.HSV `toml:"background"`
}

// DefaultMosaic returns the default parameters.
func DefaultMosaic() *Mosaic {
	return &Mosaic{
		Size:       Size{1024, 768},
		Layers:     3,
		Side:       10,
		SideStep:   4,
		Margin:     5,
		Decimation: 3,
		Jitter:     5,
		Background: shade.HSV{H: 28.4, S: 95, V: 15.7},
	}
}

func (a *Mosaic) Name() string { return "mosaic" }

func (a *Mosaic) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if err := atLeast("layers", a.Layers, 1); err != nil {
		return err
	}
	if err := atLeast("side", a.Side, 1); err != nil {
		return err
	}
	if err := atLeast("side_step", a.SideStep, 0); err != nil {
		return err
	}
	if err := atLeast("margin", a.Margin, 0); err != nil {
		return err
	}
	if err := atLeast("decimation", a.Decimation, 1); err != nil {
		return err
	}
	return atLeast("jitter", a.Jitter, 0)
}

func (a *Mosaic) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	rng := newRand(seed)
	c := genart.NewCanvas(a.Size.Width, a.Size.Height, a.Background)
	dc := newContext(c)
	for i := range a.Layers {
		n := a.drawLayer(dc, rng, i)
		genart.Logger().Debug("layer", "artwork", a.Name(), "layer", i, "squares", n)
	}
	return c, nil
}

// drawLayer draws the squares of layer i and returns their number.
func (a *Mosaic) drawLayer(dc *gg.Context, rng *rand.Rand, i int) int {
	side := a.Side + i*a.SideStep
	pad := i * a.Margin
	cols := a.Size.Width / side
	rows := a.Size.Height / side

	count := 0
	for col := 1 + pad; col < cols-1-pad; col++ {
		for row := 1 + pad; row < rows-1-pad; row++ {
			if rng.IntN(21)%a.Decimation != 0 {
				continue
			}
			x0 := spread(rng, col*side, a.Jitter)
			y0 := spread(rng, row*side, a.Jitter)
			x1 := spread(rng, (col+1)*side, a.Jitter)
			y1 := spread(rng, (row+1)*side, a.Jitter)

			// pen (outline) and brush (fill) colours of layer i
			pen := shade.HSL{
				H: float64(50 * i),
				S: float64(spread(rng, 10+10*(3-i), 10)),
				L: float64(spread(rng, 4+6*i, 30)),
			}
			brush := shade.HSL{
				H: float64(24 + 10*i),
				S: float64(spread(rng, 10*(3-i), 70)),
				L: float64(spread(rng, 25+10*i, 10)),
			}
			width := spread(rng, 1, 2)

			dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0))
			dc.SetColor(brush.Clamp())
			if width == 0 {
				dc.Fill()
			} else {
				dc.FillPreserve()
				dc.SetColor(pen.Clamp())
				dc.SetLineWidth(float64(width))
				dc.Stroke()
			}
			count++
		}
	}
	return count
}

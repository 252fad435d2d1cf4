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
	"math/rand/v2"
	"slices"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/shade"
	"seehuhn.de/go/pdf/graphics"
)

// Cells scatters rectangles and right triangles over the canvas, in layers
// of decreasing size. Every cell is painted with a vertical gradient, gets a
// highlight along its top edge and casts a shadow to the lower right.
type Cells struct {
	Size Size `toml:"size"`

	// AverageCell is the side length of the cells in the first layer.
	// Layer k uses AverageCell/k.
	AverageCell int `toml:"average_cell"`

	// Tolerance is the maximal random deviation of a side length.
	Tolerance int `toml:"tolerance"`

	Cells  int `toml:"cells"`
	Layers int `toml:"layers"`

	// Noise is the maximal random offset of saturation and value of a
	// pixel.
	Noise int `toml:"noise"`

	ShadowOffset image.Point `toml:"shadow_offset"`

	// ShadowDepth is subtracted from all colour channels of shadowed
	// pixels.
	ShadowDepth uint8 `toml:"shadow_depth"`

	// Step is the decrease of the colour value per pixel from the top of a
	// cell, GlobalStep from the top of the canvas.
	Step       float64 `toml:"step"`
	GlobalStep float64 `toml:"global_step"`

	Colors     []shade.HSV `toml:"colors"`
	Line       shade.HSV   `toml:"line"`
	Background shade.HSV   `toml:"background"`
}

// DefaultCells returns the default parameters.
func DefaultCells() *Cells {
	return &Cells{
		Size:         Size{1200, 900},
		AverageCell:  400,
		Tolerance:    30,
		Cells:        80,
		Layers:       4,
		Noise:        3,
		ShadowOffset: image.Pt(5, 5),
		ShadowDepth:  33,
		Step:         .05,
		GlobalStep:   .02,
		Colors: []shade.HSV{
			{H: 203, S: 0, V: 90},
			{H: 203, S: 63, V: 60},
			{H: 263, S: 1, V: 37},
		},
		Line:       shade.HSV{H: 0, S: 0, V: 2},
		Background: shade.HSV{H: 200, S: 60, V: 19.6},
	}
}

func (a *Cells) Name() string { return "cells" }

func (a *Cells) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if a.Size.Width < 3 || a.Size.Height < 3 {
		return fmt.Errorf("%w: canvas %dx%d too small", ErrInvalidConfig, a.Size.Width, a.Size.Height)
	}
	if err := atLeast("layers", a.Layers, 1); err != nil {
		return err
	}
	if err := atLeast("cells", a.Cells, a.Layers); err != nil {
		return err
	}
	if err := atLeast("average_cell", a.AverageCell, 1); err != nil {
		return err
	}
	if err := atLeast("tolerance", a.Tolerance, 0); err != nil {
		return err
	}
	if err := atLeast("noise", a.Noise, 0); err != nil {
		return err
	}
	if len(a.Colors) == 0 {
		return fmt.Errorf("%w: no cell colours", ErrInvalidConfig)
	}
	return nil
}

// cellCorners are the corners of a cell's bounding box, clockwise on the
// canvas from the top left.
const cellCorners = 4

// cellSizeStep is the granularity of random cell sizes.
const cellSizeStep = 5

// Cell is a rectangle or a right triangle in canvas space.
type Cell struct {
	// Corners are 3 or 4 of the corners of the bounding box, clockwise on
	// the canvas from the top left.
	Corners []image.Point
	Color   shade.HSV
}

// Generate places the cells. Cells of later layers are smaller and are
// painted on top.
func (a *Cells) Generate(rng *rand.Rand) []Cell {
	perLayer := a.Cells / a.Layers
	cells := make([]Cell, 0, a.Cells)
	for i := range a.Cells {
		layer := 1 + i/perLayer
		mid := image.Pt(1+rng.IntN(a.Size.Width-1), 1+rng.IntN(a.Size.Height-1))
		w := shade.JitterStep(rng, a.AverageCell/layer, a.Tolerance, cellSizeStep)
		h := shade.JitterStep(rng, a.AverageCell/layer, a.Tolerance, cellSizeStep)

		box := [cellCorners]image.Point{
			{mid.X - w/2, mid.Y - h/2},
			{mid.X + w/2, mid.Y - h/2},
			{mid.X + w/2, mid.Y + h/2},
			{mid.X - w/2, mid.Y + h/2},
		}
		n := 3 + rng.IntN(2)
		idx := rng.Perm(cellCorners)[:n]
		slices.Sort(idx)
		corners := make([]image.Point, n)
		for j, k := range idx {
			corners[j] = box[k]
		}
		cells = append(cells, Cell{Corners: corners})
	}
	for i := range cells {
		cells[i].Color = a.Colors[rng.IntN(len(a.Colors))]
	}
	return cells
}

// edges returns the outline of the cell. The hypotenuse of a triangle is
// the only edge which is neither horizontal nor vertical.
func (cell Cell) edges() [][2]image.Point {
	var res [][2]image.Point
	n := len(cell.Corners)
	for i := range n {
		res = append(res, [2]image.Point{cell.Corners[i], cell.Corners[(i+1)%n]})
	}
	return res
}

// span returns the topmost and bottommost outline pixel in column x.
func (cell Cell) span(x int) (y0, y1 int, ok bool) {
	for _, e := range cell.edges() {
		p, q := e[0], e[1]
		if x < min(p.X, q.X) || x > max(p.X, q.X) {
			continue
		}
		var lo, hi int
		if p.X == q.X {
			lo, hi = min(p.Y, q.Y), max(p.Y, q.Y)
		} else {
			y := p.Y + (x-p.X)*(q.Y-p.Y)/(q.X-p.X)
			lo, hi = y, y
		}
		if !ok {
			y0, y1, ok = lo, hi, true
			continue
		}
		y0, y1 = min(y0, lo), max(y1, hi)
	}
	return y0, y1, ok
}

// topEdge returns the horizontal edge at the top of the cell, left end
// first.
func (cell Cell) topEdge() (image.Point, image.Point, bool) {
	top := cell.Corners[0].Y
	for _, p := range cell.Corners {
		top = min(top, p.Y)
	}
	for _, e := range cell.edges() {
		if e[0].Y == top && e[1].Y == top {
			if e[0].X > e[1].X {
				return e[1], e[0], true
			}
			return e[0], e[1], true
		}
	}
	return image.Point{}, image.Point{}, false
}

// sizes of the cell decorations, in pixels
const (
	cellOutline   = 2
	cellHighlight = 7
	cellTopInset  = 5
	cellTopDrop   = 3
)

func (a *Cells) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	rng := newRand(seed)
	cells := a.Generate(rng)
	genart.Logger().Debug("cells", "artwork", a.Name(), "count", len(cells))

	c := genart.NewCanvas(a.Size.Width, a.Size.Height, a.Background)
	a.paint(c, rng, cells)
	return c, nil
}

// paint draws the cells in order, followed by their shadows.
func (a *Cells) paint(c *genart.Canvas, rng *rand.Rand, cells []Cell) {
	mask := shade.NewShadowMask(c.Width, c.Height)
	for _, cell := range cells {
		a.paintCell(c, rng, mask, cell)
	}
	mask.Apply(c, a.ShadowDepth)
}

func (a *Cells) paintCell(c *genart.Canvas, rng *rand.Rand, mask *shade.ShadowMask, cell Cell) {
	grad := shade.VerticalGradient{
		Base:       cell.Color,
		Step:       a.Step,
		GlobalStep: a.GlobalStep,
		Noise:      a.Noise,
	}
	xMin, xMax := cell.Corners[0].X, cell.Corners[0].X
	for _, p := range cell.Corners {
		xMin, xMax = min(xMin, p.X), max(xMax, p.X)
	}
	for x := xMin + cellOutline; x < xMax+1-cellOutline; x++ {
		y0, y1, ok := cell.span(x)
		if !ok {
			continue
		}
		if x > 0 && x < c.Width {
			grad.PaintColumn(c, rng, x, y0-cellOutline, y1+cellOutline)
		}
		dx, dy := a.ShadowOffset.X, a.ShadowOffset.Y
		mask.MarkColumn(x+dx, y0+dy, y1+dy)
		mask.ClearColumn(x, y0, y1)
	}

	if p, q, ok := cell.topEdge(); ok {
		rod := genart.Rod{
			A: c.ToCartesian(genart.Pixel{X: float64(p.X + cellTopInset), Y: float64(p.Y + cellTopDrop)}),
			B: c.ToCartesian(genart.Pixel{X: float64(q.X - cellTopInset), Y: float64(q.Y + cellTopDrop)}),
		}
		c.StrokeRods([]genart.Rod{rod}, genart.RodStyle{Width: 2}, cell.Color.Lighten(cellHighlight))
	}

	rods := make([]genart.Rod, 0, len(cell.Corners))
	for _, e := range cell.edges() {
		rods = append(rods, genart.Rod{
			A: c.ToCartesian(genart.Pixel{X: float64(e[0].X), Y: float64(e[0].Y)}),
			B: c.ToCartesian(genart.Pixel{X: float64(e[1].X), Y: float64(e[1].Y)}),
		})
	}
	c.StrokeRods(rods, genart.RodStyle{Width: cellOutline, Cap: graphics.LineCapSquare}, a.Line)
}

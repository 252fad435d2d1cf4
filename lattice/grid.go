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

package lattice

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Grid is a lattice of pins, organised in rows.
type Grid struct {
	Config

	// Step is the distance between neighbouring rows.
	Step float64

	// MidCol and MidRow locate the centre cell.
	MidCol, MidRow int

	rows [][]*Pin
	pins []*Pin
}

// Rows returns the rows of the grid, top row first. For the square patterns
// all rows have the same length and cells without a pin are nil.
func (g *Grid) Rows() [][]*Pin {
	return g.rows
}

// Pins returns all pins, row by row from the top.
func (g *Grid) Pins() []*Pin {
	return g.pins
}

// Len returns the number of pins.
func (g *Grid) Len() int {
	return len(g.pins)
}

// NumRows returns the number of rows.
func (g *Grid) NumRows() int {
	return len(g.rows)
}

// At returns the pin in the given cell, or nil if there is none.
func (g *Grid) At(col, row int) *Pin {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return nil
	}
	return g.rows[row][col]
}

// checkerboard lays out a square grid with the given step. If keep is 0 or
// 1, only cells where the column and row offsets from the centre cell sum to
// a number of this parity are kept; keep < 0 keeps all cells.
func checkerboard(c Config, step float64, keep int) *Grid {
	cols := int(math.Ceil(float64(c.Size.X)/step)) + 2
	rows := int(math.Ceil(float64(c.Size.Y)/step)) + 2
	g := &Grid{
		Config: c,
		Step:   step,
		MidCol: cols / 2,
		MidRow: rows / 2,
	}

	xs := accumulate(cols, g.MidCol, step)
	ys := accumulate(rows, g.MidRow, -step)

	g.rows = make([][]*Pin, rows)
	for r := range rows {
		g.rows[r] = make([]*Pin, cols)
		for col := range cols {
			dc, dr := col-g.MidCol, g.MidRow-r
			if keep >= 0 && parity(dc+dr) != keep {
				continue
			}
			pin := &Pin{
				Pos:    vec.Vec2{X: xs[col], Y: ys[r]},
				Col:    col,
				Row:    r,
				SymCol: dc,
				SymRow: dr,
			}
			g.rows[r][col] = pin
			g.pins = append(g.pins, pin)
		}
	}
	return g
}

// accumulate returns n coordinates, zero at index mid, changing by step from
// one index to the next. Values are accumulated outwards from mid.
func accumulate(n, mid int, step float64) []float64 {
	res := make([]float64, n)
	for i := mid + 1; i < n; i++ {
		res[i] = res[i-1] + step
	}
	for i := mid - 1; i >= 0; i-- {
		res[i] = res[i+1] - step
	}
	return res
}

// sameCoord is the tolerance for treating two coordinates as equal.
const sameCoord = 1e-6

// fromPoints groups scattered points into rows of equal y. Duplicate
// points are removed.
func fromPoints(c Config, pts []vec.Vec2) *Grid {
	slices.SortFunc(pts, func(a, b vec.Vec2) int {
		if d := cmp.Compare(b.Y, a.Y); d != 0 {
			return d
		}
		return cmp.Compare(a.X, b.X)
	})

	var rows [][]vec.Vec2
	for _, p := range pts {
		if n := len(rows); n > 0 && math.Abs(rows[n-1][0].Y-p.Y) < sameCoord {
			rows[n-1] = append(rows[n-1], p)
			continue
		}
		rows = append(rows, []vec.Vec2{p})
	}

	g := &Grid{Config: c, Step: c.Spacing, MidRow: -1, MidCol: -1}
	g.rows = make([][]*Pin, len(rows))
	for r, row := range rows {
		// rows were split by y only, so sort again by x
		slices.SortFunc(row, func(a, b vec.Vec2) int { return cmp.Compare(a.X, b.X) })
		row = slices.CompactFunc(row, func(a, b vec.Vec2) bool {
			return math.Abs(a.X-b.X) < sameCoord
		})
		for col, p := range row {
			pin := &Pin{
				Pos:    p,
				Col:    col,
				Row:    r,
				SymCol: SymmetricIndex(col, len(row), true),
				SymRow: SymmetricIndex(len(rows)-1-r, len(rows), true),
			}
			g.rows[r] = append(g.rows[r], pin)
			g.pins = append(g.pins, pin)
			if p.X == 0 && p.Y == 0 {
				g.MidCol, g.MidRow = col, r
			}
		}
	}
	return g
}

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
	"math/rand/v2"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/lattice"
)

// Half selects the upper or the lower half of a ring.
type Half int

const (
	Upper Half = iota // quadrants 1 and 2
	Lower             // quadrants 3 and 4
)

func (h Half) String() string {
	if h == Upper {
		return "upper"
	}
	return "lower"
}

// Angles returns the angular range covered by h.
func (h Half) Angles() (start, end float64) {
	if h == Upper {
		return 0, 180
	}
	return 180, 360
}

// Quadrants returns the two quadrants covered by h.
func (h Half) Quadrants() [2]Quadrant {
	if h == Upper {
		return [2]Quadrant{1, 2}
	}
	return [2]Quadrant{3, 4}
}

// FlipFlop resolves the overlap of rings on a plain lattice. Each ring is
// drawn as a half ring only, alternating between the upper and the lower
// half from column to column. The ring in the middle column shows its upper
// half. Once the next row is drawn, the third quadrant of every lower half
// ring of the previous row is drawn again, so that it covers the rings
// below it.
//
// For every pair of horizontally or vertically adjacent rings, each half
// of the lens-shaped region they share ends up drawn by exactly one of
// the two rings.
type FlipFlop struct{}

// Halves returns the half of the ring at p which is drawn.
func (FlipFlop) Halves(p *lattice.Pin) Half {
	if p.ColParity() == 0 {
		return Upper
	}
	return Lower
}

// Render draws the rings for all pins of g, top row first.
func (f FlipFlop) Render(c *genart.Canvas, g *lattice.Grid, ring ArcDrawer) {
	restore, _, _ := QuadrantArc(3, 0)
	rows := g.Rows()
	for i, row := range rows {
		for _, p := range row {
			if p == nil {
				continue
			}
			start, end := f.Halves(p).Angles()
			ring.DrawArc(c, p.Pos, start, end)
		}
		if i == 0 {
			continue
		}
		for _, p := range rows[i-1] {
			if p == nil || f.Halves(p) != Lower {
				continue
			}
			ring.DrawArc(c, p.Pos, restore, restore+90)
		}
	}
}

// RowRestore redraws one quadrant of every ring, row by row from the bottom
// of the lattice to the top. The restored quadrant alternates between 3 and
// 4 from row to row, starting with quadrant 3 in the bottom row. Restored
// arcs are shortened by Cross degrees at both ends, so that they stop where
// they meet the neighbouring rings.
type RowRestore struct {
	Cross float64

	// Shadow, if set, is drawn before every restored arc.
	Shadow *RingShadow
}

// Quadrant returns the quadrant restored in the k-th row, counted from the
// bottom.
func (RowRestore) Quadrant(k int) Quadrant {
	return [2]Quadrant{3, 4}[k%2]
}

// Render draws the restored arcs for all pins of g.
func (r RowRestore) Render(c *genart.Canvas, rng *rand.Rand, g *lattice.Grid, ring ArcDrawer) {
	rows := g.Rows()
	for k := range rows {
		row := rows[len(rows)-1-k]
		q := r.Quadrant(k)
		start, end, _ := QuadrantArc(q, r.Cross)
		for _, p := range row {
			if p == nil {
				continue
			}
			if r.Shadow != nil {
				r.Shadow.Draw(c, rng, p.Pos, q)
			}
			ring.DrawArc(c, p.Pos, start, end)
		}
	}
}

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

package testcases

import (
	"seehuhn.de/go/genart"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []Scene{
	{
		Name:   "line_butt",
		Width:  64,
		Height: 64,
		Op: Rods{
			Rods:  []genart.Rod{horizontalRod(-22, 0, 22)},
			Style: genart.RodStyle{Width: 8, Cap: graphics.LineCapButt},
		},
	},
	{
		Name:   "line_round",
		Width:  64,
		Height: 64,
		Op: Rods{
			Rods:  []genart.Rod{horizontalRod(-22, 0, 22)},
			Style: genart.RodStyle{Width: 8, Cap: graphics.LineCapRound},
		},
	},
	{
		Name:   "line_square",
		Width:  64,
		Height: 64,
		Op: Rods{
			Rods:  []genart.Rod{horizontalRod(-22, 0, 22)},
			Style: genart.RodStyle{Width: 8, Cap: graphics.LineCapSquare},
		},
	},
	{
		Name:   "diagonal_round",
		Width:  64,
		Height: 64,
		Op: Rods{
			Rods:  []genart.Rod{{A: pt(-20, -20), B: pt(20, 20)}},
			Style: genart.RodStyle{Width: 6, Cap: graphics.LineCapRound},
		},
	},
	{
		Name:   "crossing",
		Width:  64,
		Height: 64,
		Op: Rods{
			Rods: []genart.Rod{
				{A: pt(-20, -20), B: pt(20, 20)},
				{A: pt(-20, 20), B: pt(20, -20)},
			},
			Style: genart.RodStyle{Width: 6, Cap: graphics.LineCapButt},
		},
	},
	{
		Name:   "hexagon_round",
		Width:  96,
		Height: 96,
		Op: Rods{
			Rods:  hexagonRods(36),
			Style: genart.RodStyle{Width: 10, Cap: graphics.LineCapRound},
		},
	},
	{
		Name:   "degenerate_round",
		Width:  64,
		Height: 64,
		Op: Rods{
			Rods:  []genart.Rod{{A: pt(3, 3), B: pt(3, 3)}},
			Style: genart.RodStyle{Width: 12, Cap: graphics.LineCapRound},
		},
	},
}

// horizontalRod builds a horizontal rod.
func horizontalRod(x1, y, x2 float64) genart.Rod {
	return genart.Rod{A: pt(x1, y), B: pt(x2, y)}
}

// hexagonRods returns the six sides of a regular hexagon around the origin.
func hexagonRods(radius float64) []genart.Rod {
	pts := genart.RegularPolygon(vec.Vec2{}, radius, 6, 60)
	rods := make([]genart.Rod, len(pts))
	for i := range pts {
		rods[i] = genart.Rod{A: pts[i], B: pts[(i+1)%len(pts)]}
	}
	return rods
}

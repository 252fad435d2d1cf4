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
	"image/color"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Segments selects which sides of a hexagon are drawn. Sides are numbered
// from 1, counter-clockwise, starting with the side from the vertex at 60°
// to the vertex at 120°.
type Segments int

const (
	AllSegments Segments = iota
	OddSegments
	EvenSegments
)

func (s Segments) String() string {
	switch s {
	case OddSegments:
		return "odd"
	case EvenSegments:
		return "even"
	default:
		return "all"
	}
}

func (s Segments) keep(i int) bool {
	switch s {
	case OddSegments:
		return i%2 != 0
	case EvenSegments:
		return i%2 == 0
	default:
		return true
	}
}

// Hexagon draws hexagon outlines made of rods with round ends. Each rod
// gets a border: it is first drawn 4 pixels wider in the Border colour and
// then at its nominal width in the Core colour.
type Hexagon struct {
	Radius float64
	Rod    float64

	Border color.Color
	Core   color.Color
}

// Vertices returns the six corners around center, counter-clockwise from
// the one at 60°.
func (h *Hexagon) Vertices(center vec.Vec2) []vec.Vec2 {
	return genart.RegularPolygon(center, h.Radius, 6, 60)
}

// Rods returns the selected sides around center.
func (h *Hexagon) Rods(center vec.Vec2, which Segments) []genart.Rod {
	pts := h.Vertices(center)
	var rods []genart.Rod
	for i := 1; i <= len(pts); i++ {
		if !which.keep(i) {
			continue
		}
		rods = append(rods, genart.Rod{A: pts[i-1], B: pts[i%len(pts)]})
	}
	return rods
}

// Draw draws the selected sides of the hexagon around center.
func (h *Hexagon) Draw(c *genart.Canvas, center vec.Vec2, which Segments) {
	rods := h.Rods(center, which)
	c.StrokeRods(rods, genart.RodStyle{Width: h.Rod + 4, Cap: graphics.LineCapRound}, h.Border)
	c.StrokeRods(rods, genart.RodStyle{Width: h.Rod, Cap: graphics.LineCapRound}, h.Core)
}

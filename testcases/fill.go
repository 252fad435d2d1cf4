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
	"math"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []Scene{
	{
		Name:   "triangle_nonzero",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: triangle(-22, -18, 0, 22, 22, -18), Rule: genart.NonZero},
	},
	{
		Name:   "triangle_evenodd",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: triangle(-22, -18, 0, 22, 22, -18), Rule: genart.EvenOdd},
	},
	{
		Name:   "star_nonzero",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: fivePointStar(25), Rule: genart.NonZero},
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: fivePointStar(25), Rule: genart.EvenOdd},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: rectangle(-22, -22, 22, 22), Rule: genart.NonZero},
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: genart.Circle(vec.Vec2{}, 25), Rule: genart.NonZero},
	},
	{
		Name:   "circle_small",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: genart.Circle(pt(0.25, 0.25), 1.5), Rule: genart.NonZero},
	},
	{
		Name:   "ring",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: genart.Ring(vec.Vec2{}, 15, 28), Rule: genart.NonZero},
	},
	{
		Name:   "sector",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: genart.Sector(vec.Vec2{}, 12, 28, 30, 150), Rule: genart.NonZero},
	},
	{
		Name:   "sector_wrap",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: genart.Sector(vec.Vec2{}, 12, 28, 300, 60), Rule: genart.NonZero},
	},
	{
		Name:   "pie",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: genart.Sector(vec.Vec2{}, 0, 28, 90, 360), Rule: genart.NonZero},
	},
	{
		Name:   "hexagon",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: genart.Polygon(genart.RegularPolygon(vec.Vec2{}, 28, 6, 60)), Rule: genart.NonZero},
	},
	{
		Name:   "quadratic",
		Width:  64,
		Height: 64,
		Op: Fill{
			Path: (&path.Data{}).
				MoveTo(pt(-22, -18)).
				QuadTo(pt(0, 22), pt(22, -18)).
				Close().Iter(),
			Rule: genart.NonZero,
		},
	},
	{
		Name:   "cubic",
		Width:  64,
		Height: 64,
		Op: Fill{
			Path: (&path.Data{}).
				MoveTo(pt(-22, -18)).
				CubeTo(pt(-12, 22), pt(12, 22), pt(22, -18)).
				Close().Iter(),
			Rule: genart.NonZero,
		},
	},
	{
		Name:   "concentric_nonzero",
		Width:  128,
		Height: 128,
		Op:     Fill{Path: concentricSquares(60, 30), Rule: genart.NonZero},
	},
	{
		Name:   "concentric_evenodd",
		Width:  128,
		Height: 128,
		Op:     Fill{Path: concentricSquares(60, 30), Rule: genart.EvenOdd},
	},
	{
		Name:   "clipped",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: rectangle(-100, -10, 100, 10), Rule: genart.NonZero},
	},
	{
		Name:   "subpixel_offset_00",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: offsetSquare(20, 0), Rule: genart.NonZero},
	},
	{
		Name:   "subpixel_offset_25",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: offsetSquare(20, 0.25), Rule: genart.NonZero},
	},
	{
		Name:   "subpixel_offset_50",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: offsetSquare(20, 0.5), Rule: genart.NonZero},
	},
	{
		Name:   "subpixel_offset_75",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: offsetSquare(20, 0.75), Rule: genart.NonZero},
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return genart.Polygon([]vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)})
}

// fivePointStar builds a five-pointed star (self-intersecting) around the
// origin, with one point straight up.
func fivePointStar(r float64) path.Path {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 + math.Pi/2
		pts[i] = pt(r*math.Cos(angle), r*math.Sin(angle))
	}

	// connect every second point
	order := []int{0, 2, 4, 1, 3}
	star := make([]vec.Vec2, len(order))
	for i, j := range order {
		star[i] = pts[j]
	}
	return genart.Polygon(star)
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return genart.Polygon([]vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)})
}

// offsetSquare builds a square of the given side, centred at the origin
// and shifted by offset in both directions.
func offsetSquare(side, offset float64) path.Path {
	h := side / 2
	return rectangle(offset-h, offset-h, offset+h, offset+h)
}

// concentricSquares builds two nested squares around the origin, both
// counter-clockwise.
func concentricSquares(outer, inner float64) path.Path {
	p := &path.Data{}
	for _, r := range []float64{outer, inner} {
		p = p.
			MoveTo(pt(-r, -r)).
			LineTo(pt(r, -r)).
			LineTo(pt(r, r)).
			LineTo(pt(-r, r)).
			Close()
	}
	return p.Iter()
}

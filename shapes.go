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

package genart

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa places the control points of a cubic Bézier approximating a
// quarter circle.
const kappa = 0.5522847498307936

// Circle returns a counter-clockwise circle around center.
func Circle(center vec.Vec2, radius float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		addCircle(yield, center, radius)
	}
}

// Ring returns the annulus between the radii inner and outer. It must be
// filled with [NonZero] or [EvenOdd]; the inner circle runs clockwise.
func Ring(center vec.Vec2, inner, outer float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !addCircle(yield, center, outer) {
			return
		}
		if inner > 0 {
			addCircle(yield, center, -inner)
		}
	}
}

// addCircle emits a closed circle. A negative radius reverses the
// orientation.
func addCircle(yield func(path.Command, []vec.Vec2) bool, c vec.Vec2, r float64) bool {
	ky := kappa * r
	kx := kappa * max(r, -r)
	rx := max(r, -r)

	var buf [3]vec.Vec2
	buf[0] = vec.Vec2{X: c.X + rx, Y: c.Y}
	if !yield(path.CmdMoveTo, buf[:1]) {
		return false
	}
	// quarter circles through (0, r), (-r, 0), (0, -r), (r, 0)
	quarters := [4][3]vec.Vec2{
		{{X: c.X + rx, Y: c.Y + ky}, {X: c.X + kx, Y: c.Y + r}, {X: c.X, Y: c.Y + r}},
		{{X: c.X - kx, Y: c.Y + r}, {X: c.X - rx, Y: c.Y + ky}, {X: c.X - rx, Y: c.Y}},
		{{X: c.X - rx, Y: c.Y - ky}, {X: c.X - kx, Y: c.Y - r}, {X: c.X, Y: c.Y - r}},
		{{X: c.X + kx, Y: c.Y - r}, {X: c.X + rx, Y: c.Y - ky}, {X: c.X + rx, Y: c.Y}},
	}
	for _, q := range quarters {
		buf = q
		if !yield(path.CmdCubeTo, buf[:]) {
			return false
		}
	}
	return yield(path.CmdClose, nil)
}

// Polygon returns the closed polygon through pts.
func Polygon(pts []vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		var buf [1]vec.Vec2
		for i, p := range pts {
			buf[0] = p
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// RegularPolygon returns the vertices of a regular n-gon around center,
// counter-clockwise, with the first vertex at angle start (degrees).
func RegularPolygon(center vec.Vec2, radius float64, n int, start float64) []vec.Vec2 {
	if n < 3 {
		return nil
	}
	pts := make([]vec.Vec2, n)
	for i := range n {
		pts[i] = PolarToCartesian(Polar{Angle: start + float64(i)*360/float64(n), Radius: radius}, center)
	}
	return pts
}

// sectorStep is the largest angle, in degrees, between two consecutive
// vertices along the arcs of a sector.
const sectorStep = 2

// Sector returns the part of the annulus between the radii inner and outer
// which lies between the angles start and end. The arcs are approximated
// by polygons. For inner <= 0 the result is a pie slice.
func Sector(center vec.Vec2, inner, outer, start, end float64) path.Path {
	return Polygon(SectorPoints(center, inner, outer, start, end))
}

// SectorPoints returns the vertices of the polygon drawn by [Sector].
func SectorPoints(center vec.Vec2, inner, outer, start, end float64) []vec.Vec2 {
	start, end = NormalizeSweep(start, end)
	n := max(1, int(math.Ceil((end-start)/sectorStep)))
	step := (end - start) / float64(n)

	pts := make([]vec.Vec2, 0, 2*n+2)
	for i := 0; i <= n; i++ {
		pts = append(pts, PolarToCartesian(Polar{Angle: start + float64(i)*step, Radius: outer}, center))
	}
	if inner <= 0 {
		return append(pts, center)
	}
	for i := n; i >= 0; i-- {
		pts = append(pts, PolarToCartesian(Polar{Angle: start + float64(i)*step, Radius: inner}, center))
	}
	return pts
}

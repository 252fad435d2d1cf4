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
	"image"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/geom/vec"
)

// hexagonal returns the centre and the points of concentric hexagons of
// radius k*step, k = 1, 2, .... The sides of the k-th hexagon are divided
// into k equal parts. Hexagons are added until one lies completely outside
// the canvas.
func hexagonal(size image.Point, step, tilt float64) []vec.Vec2 {
	res := []vec.Vec2{{}}
	for k := 1; ; k++ {
		ring := hexagonRing(step*float64(k), k, tilt)
		if IsOutside(ring, size) {
			break
		}
		res = append(res, ring...)
	}
	return res
}

func hexagonRing(radius float64, k int, tilt float64) []vec.Vec2 {
	var corners [6]vec.Vec2
	for i := range corners {
		corners[i] = genart.PolarToCartesian(genart.Polar{Angle: tilt + float64(60*i), Radius: radius}, vec.Vec2{})
	}
	res := make([]vec.Vec2, 0, 6*k)
	for i, a := range corners {
		b := corners[(i+1)%6]
		for j := range k {
			t := float64(j) / float64(k)
			res = append(res, a.Mul(1-t).Add(b.Mul(t)))
		}
	}
	return res
}

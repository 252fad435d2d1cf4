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
	"math"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/geom/vec"
)

// zigzag returns the pins of vertical zig-zag chains. The chains start at
// seed points on the x-axis, which are shifted alternately by 3 and 6 steps
// to the left (and 6 and 3 steps to the right) until both chains of a seed
// lie completely outside the canvas.
func zigzag(size image.Point, step float64) []vec.Vec2 {
	seed := vec.Vec2{X: -3 * step, Y: 0}

	var res []vec.Vec2
	res = zigzagWalk(res, size, step, seed, [2]float64{-3 * step, -6 * step})
	res = zigzagWalk(res, size, step, seed, [2]float64{6 * step, 3 * step})
	return res
}

func zigzagWalk(res []vec.Vec2, size image.Point, step float64, p vec.Vec2, shifts [2]float64) []vec.Vec2 {
	a := 60.0
	for i := 0; ; i++ {
		up := zigzagChain(p, 3*step, a, 180-a, size)
		down := zigzagChain(p, 3*step, 360-a, a-180, size)
		if IsOutside(up, size) && IsOutside(down, size) {
			break
		}
		res = append(res, p)
		res = append(res, up...)
		res = append(res, down...)

		p.X += shifts[i%2]
		a = 180 - a
	}
	return res
}

// zigzagChain walks from p0 in segments of length seg, alternating between
// the directions a0 and a1. The chain ends two points after it first leaves
// the vertical extent of the canvas.
func zigzagChain(p0 vec.Vec2, seg, a0, a1 float64, size image.Point) []vec.Vec2 {
	limit := float64(size.Y) / 2
	var res []vec.Vec2
	margin := 2
	for i := 0; margin > 0; i++ {
		a := a0
		if i%2 == 1 {
			a = a1
		}
		p1 := genart.PolarToCartesian(genart.Polar{Angle: a, Radius: seg}, p0)
		res = append(res, p1)
		if math.Abs(p1.Y) > limit {
			margin--
		}
		p0 = p1
	}
	return res
}

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

package shade

import (
	"image"
	"math"
	"math/rand/v2"
)

// Sampler returns n random integer offsets inside the disc of radius r.
type Sampler func(rng *rand.Rand, r float64, n int) []image.Point

// StippleBiased picks a column x uniformly in [-r, r] and then a row
// uniformly within the disc at that column. The short columns near the
// left and right of the disc get as many points as the long ones, so the
// density there is higher than with area-uniform sampling.
func StippleBiased(rng *rand.Rand, r float64, n int) []image.Point {
	if n <= 0 {
		return nil
	}
	ri := int(r)
	res := make([]image.Point, n)
	if ri <= 0 {
		return res
	}
	for i := range res {
		x := rng.IntN(2*ri+1) - ri
		h := int(math.Sqrt(float64(ri*ri - x*x)))
		y := -h
		if h > 0 {
			y += rng.IntN(2*h + 1)
		}
		res[i] = image.Point{X: x, Y: y}
	}
	return res
}

// StippleUniform samples the disc uniformly by area, using a square-root
// scaled radius and a uniform angle.
func StippleUniform(rng *rand.Rand, r float64, n int) []image.Point {
	if n <= 0 {
		return nil
	}
	res := make([]image.Point, n)
	if r <= 0 {
		return res
	}
	for i := range res {
		rho := r * math.Sqrt(rng.Float64())
		sin, cos := math.Sincos(2 * math.Pi * rng.Float64())
		x := math.Round(rho * cos)
		y := math.Round(rho * sin)
		// rounding may leave the disc
		if x*x+y*y > r*r {
			x, y = math.Trunc(rho*cos), math.Trunc(rho*sin)
		}
		res[i] = image.Point{X: int(x), Y: int(y)}
	}
	return res
}

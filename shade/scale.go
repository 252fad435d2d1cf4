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
	"math"
	"math/rand/v2"
)

// Range is a closed interval of real numbers. The bounds may be given in
// either order.
type Range [2]float64

// Scale maps v linearly from the interval from to the interval to.
// The end points of from are mapped exactly to the end points of to, and the
// map is monotonic. Values outside from are mapped to the nearest end point
// of to. If from is degenerate, the result is to[0].
func Scale(v float64, from, to Range) float64 {
	a, b := from[0], from[1]
	c, d := to[0], to[1]
	switch {
	case a == b:
		return c
	case v == a:
		return c
	case v == b:
		return d
	}
	y := c + (v-a)/(b-a)*(d-c)
	return Clamp(y, min(c, d), max(c, d))
}

// ScaleRound is like Scale, but rounds the result to the nearest integer.
func ScaleRound(v float64, from, to Range) int {
	return int(math.Round(Scale(v, from, to)))
}

// Jitter returns a random integer in [x-tol, x+tol). For tol <= 0 it
// returns x.
func Jitter(rng *rand.Rand, x, tol int) int {
	if tol <= 0 {
		return x
	}
	return x - tol + rng.IntN(2*tol)
}

// JitterStep is like Jitter, but only returns values x-tol+k*step for
// integers k >= 0.
func JitterStep(rng *rand.Rand, x, tol, step int) int {
	if tol <= 0 {
		return x
	}
	step = max(step, 1)
	n := (2*tol + step - 1) / step
	return x - tol + step*rng.IntN(n)
}

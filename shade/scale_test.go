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
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func TestScaleEndpoints(t *testing.T) {
	var tests = []struct {
		from, to Range
	}{
		{Range{0, 45}, Range{5, 1}},
		{Range{45, 90}, Range{20, 98}},
		{Range{0.1, 0.7}, Range{0.3, 0.9}},
		{Range{10, -10}, Range{-1e9, 3}},
	}
	for _, tt := range tests {
		test.T(t, Scale(tt.from[0], tt.from, tt.to), tt.to[0])
		test.T(t, Scale(tt.from[1], tt.from, tt.to), tt.to[1])
	}
}

func TestScaleMonotone(t *testing.T) {
	for _, to := range []Range{{20, 98}, {98, 20}, {0.1, 0.7}} {
		from := Range{45, 90}
		prev := Scale(from[0], from, to)
		for i := 1; i <= 1000; i++ {
			v := from[0] + float64(i)*(from[1]-from[0])/1000
			y := Scale(v, from, to)
			if to[1] > to[0] {
				test.That(t, y >= prev, "increasing", v)
			} else {
				test.That(t, y <= prev, "decreasing", v)
			}
			prev = y
		}
	}
}

func TestScaleDegenerate(t *testing.T) {
	test.T(t, Scale(3, Range{2, 2}, Range{7, 9}), 7.0)
}

func TestScaleRound(t *testing.T) {
	test.T(t, ScaleRound(22.5, Range{0, 45}, Range{5, 1}), 3)
	test.T(t, ScaleRound(67.5, Range{45, 90}, Range{20, 98}), 59)
}

func TestJitter(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	test.T(t, Jitter(rng, 7, 0), 7)
	for range 1000 {
		v := Jitter(rng, 50, 3)
		test.That(t, v >= 47 && v < 53, v)
	}
}

func TestJitterStep(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	test.T(t, JitterStep(rng, 400, 0, 5), 400)
	seen := map[int]bool{}
	for range 1000 {
		v := JitterStep(rng, 400, 30, 5)
		test.That(t, v >= 370 && v < 430, v)
		test.T(t, (v-370)%5, 0, v)
		seen[v] = true
	}
	test.T(t, len(seen), 12)
}

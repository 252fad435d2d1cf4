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
	"math"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/geom/vec"
)

// Cross is a pair of crossing sine waves, each running along one diagonal
// of a square of the given side length. The waves are stamped with discs
// of radius Pen.
type Cross struct {
	Side  float64
	Pen   float64
	Color color.Color
}

// Wave returns the points of the unrotated sine wave
// y = m*sin(x*π/h), for integer x in [-h, h], where h is half the diagonal
// of the square and m is a fifth of its side.
func (s *Cross) Wave() []vec.Vec2 {
	h := s.Side * math.Sqrt2 / 2
	m := s.Side / 5
	n := int(h)
	pts := make([]vec.Vec2, 0, 2*n+1)
	for x := -n; x <= n; x++ {
		pts = append(pts, vec.Vec2{X: float64(x), Y: m * math.Sin(float64(x)*math.Pi/h)})
	}
	return pts
}

// Points returns the centres of all discs of the cross around center.
func (s *Cross) Points(center vec.Vec2) []vec.Vec2 {
	wave := s.Wave()
	res := make([]vec.Vec2, 0, 2*len(wave))
	for _, deg := range []float64{45, 135} {
		m := genart.Rotation(deg, center)
		for _, p := range wave {
			res = append(res, m.Apply(p))
		}
	}
	return res
}

// Draw draws the cross around center.
func (s *Cross) Draw(c *genart.Canvas, center vec.Vec2) {
	for _, p := range s.Points(center) {
		c.FillCircle(p, s.Pen, s.Color)
	}
}

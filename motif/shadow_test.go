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
	"bytes"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/lattice"
	"seehuhn.de/go/genart/shade"
	"seehuhn.de/go/geom/vec"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

// darkPixels returns the Cartesian centres of all black pixels.
func darkPixels(c *genart.Canvas) []vec.Vec2 {
	var res []vec.Vec2
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.RGBAAt(x, y) == black {
				res = append(res, c.ToCartesian(genart.Pixel{X: float64(x) + 0.5, Y: float64(y) + 0.5}))
			}
		}
	}
	return res
}

func TestRingShadow(t *testing.T) {
	for _, sampler := range []shade.Sampler{nil, shade.StippleBiased} {
		s := &RingShadow{Radius: 80, MaxLen: 0.06, Cross: 7, Color: black, Sampler: sampler}
		c := genart.NewCanvas(400, 400, white)
		s.Draw(c, rand.New(rand.NewPCG(1, 2)), vec.Vec2{}, 1)

		dots := darkPixels(c)
		test.That(t, len(dots) > 50, "too few dots", len(dots))
		for _, p := range dots {
			pp := genart.CartesianToPolar(p, vec.Vec2{})
			test.That(t, pp.Radius > 78 && pp.Radius < 93, "radius", pp.Radius)
			test.That(t, pp.Angle > 8 && pp.Angle < 82, "angle", pp.Angle)
		}
	}
}

func TestRingShadowSeed(t *testing.T) {
	s := &RingShadow{Radius: 80, MaxLen: 0.06, Cross: 7, Color: black}
	draw := func(seed uint64) []byte {
		c := genart.NewCanvas(400, 400, white)
		s.Draw(c, rand.New(rand.NewPCG(seed, 0)), vec.Vec2{X: -50, Y: 50}, 3)
		return c.Image().Pix
	}
	test.That(t, bytes.Equal(draw(1), draw(1)), "same seed")
	test.That(t, !bytes.Equal(draw(1), draw(2)), "different seed")
}

func TestRingShadowInvalid(t *testing.T) {
	s := &RingShadow{Radius: 80, MaxLen: 0.06, Cross: 7, Color: black}
	c := genart.NewCanvas(400, 400, white)
	s.Draw(c, rand.New(rand.NewPCG(1, 2)), vec.Vec2{}, 0)
	s.Cross = 44
	s.Draw(c, rand.New(rand.NewPCG(1, 2)), vec.Vec2{}, 2)
	test.T(t, len(darkPixels(c)), 0)
}

func TestGapShadow(t *testing.T) {
	gap := GapSide(80, 7)
	s := &GapShadow{Radius: 80, GapSide: gap, Color: black}
	test.T(t, s.BlobRadius(), 11.0)

	pins := []*lattice.Pin{
		{Pos: vec.Vec2{X: -100, Y: 0}},
		nil,
		{Pos: vec.Vec2{X: -150, Y: -100}},
	}
	c := genart.NewCanvas(500, 400, white)
	s.Draw(c, rand.New(rand.NewPCG(3, 4)), pins)

	dots := darkPixels(c)
	test.That(t, len(dots) > 100)
	left, right := 0, 0
	for _, p := range dots {
		d0 := p.Sub(vec.Vec2{X: -100 + 89, Y: 0}).Length()
		d1 := p.Sub(vec.Vec2{X: -150 + 89, Y: -100}).Length()
		test.That(t, min(d0, d1) < 11+1.5, p)
		if d0 < d1 {
			left++
		} else {
			right++
		}
	}
	// both gaps get the same dots
	test.T(t, left, right)
}

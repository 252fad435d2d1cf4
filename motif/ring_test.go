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
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"seehuhn.de/go/genart"
	"seehuhn.de/go/geom/vec"
)

func checkBands(t *testing.T, d *RingDistribution) {
	t.Helper()
	test.T(t, d.Bands[0].Outer, d.Radius, "outermost band")
	test.T(t, d.Bands[0].Role, Stripe)
	for i := 1; i < len(d.Bands); i++ {
		test.T(t, d.Bands[i].Outer, d.Bands[i-1].Inner, "bands touch", i)
		test.That(t, d.Bands[i].Role != d.Bands[i-1].Role, "roles alternate", i)
	}
}

func TestRingDistribution(t *testing.T) {
	d, err := NewRingDistribution(5, 20)
	test.Error(t, err)
	test.T(t, d.Radius, 200.0)
	test.T(t, d.PinDistance, 218.0)
	test.T(t, d.Hub, 0.0)
	test.T(t, len(d.Bands), 9)
	checkBands(t, d)
	test.T(t, d.Bands[0], Band{Inner: 180, Outer: 200, Role: Stripe})
	test.T(t, d.Bands[8], Band{Inner: 20, Outer: 40, Role: Stripe})
	for _, b := range d.Bands {
		test.T(t, b.Width(), 20.0)
	}

	for _, args := range [][2]int{{1, 20}, {5, 0}, {0, 0}} {
		_, err := NewRingDistribution(args[0], args[1])
		test.That(t, errors.Is(err, ErrInvalidRing), args)
	}
}

func TestRatioDistribution(t *testing.T) {
	d, err := NewRatioDistribution(80, 4, 0.7)
	test.Error(t, err)
	test.T(t, d.StripeWidth, 11.0)
	test.T(t, d.Hub, 8.25)
	test.T(t, len(d.Bands), 8)
	checkBands(t, d)
	for _, b := range d.Bands {
		want := 11.0
		if b.Role == Space {
			want = 7
		}
		test.T(t, b.Width(), want)
	}
	test.T(t, d.Bands[7].Inner, 8.0)

	bad := []struct {
		radius  float64
		stripes int
		ratio   float64
	}{
		{0, 4, 0.7},
		{80, 1, 0.7},
		{80, 4, math.NaN()},
		{80, 4, 0},
		{5, 4, 0.7},
		{math.Inf(1), 4, 0.7},
	}
	for _, b := range bad {
		_, err := NewRatioDistribution(b.radius, b.stripes, b.ratio)
		test.That(t, errors.Is(err, ErrInvalidRing), b)
	}
}

func TestStripedRingPixels(t *testing.T) {
	d, err := NewRingDistribution(2, 5)
	test.Error(t, err)

	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	bg := color.RGBA{A: 255}
	c := genart.NewCanvas(101, 101, bg)
	ring := &StripedRing{Dist: d, Stripe: red, Space: blue}
	ring.Draw(c, vec.Vec2{})

	// walk along the positive x-axis from the centre at pixel (50, 50)
	for r := 0; r <= 21; r++ {
		want := bg
		switch {
		case r >= 15 && r < 20:
			want = red
		case r >= 10 && r < 15:
			want = blue
		case r >= 5 && r < 10:
			want = red
		}
		test.T(t, c.RGBAAt(50+r, 50), want, "radius", r)
	}
}

func TestStripedRingHub(t *testing.T) {
	d, err := NewRatioDistribution(80, 4, 0.7)
	test.Error(t, err)
	red := color.RGBA{R: 255, A: 255}
	c := genart.NewCanvas(201, 201, color.White)
	ring := &StripedRing{Dist: d, Stripe: red, Space: color.White}
	ring.DrawArc(c, vec.Vec2{}, 0, 90)

	test.T(t, c.RGBAAt(100, 100), red, "hub")
	// the lower half of the ring is not drawn
	test.T(t, c.RGBAAt(100, 100+75), color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestGapSide(t *testing.T) {
	test.Float(t, GapSide(80, 45), 160)
	test.T(t, GapSide(80, 0), 0.0)
	test.That(t, GapSide(80, 7) > 19 && GapSide(80, 7) < 20)
}

func TestQuadrantArc(t *testing.T) {
	var tests = []struct {
		q          Quadrant
		cross      float64
		start, end float64
	}{
		{1, 7, 7, 83},
		{2, 7, 97, 173},
		{3, 7, 187, 263},
		{4, 0, 270, 360},
	}
	for _, tt := range tests {
		start, end, err := QuadrantArc(tt.q, tt.cross)
		test.Error(t, err)
		test.T(t, start, tt.start, tt.q)
		test.T(t, end, tt.end, tt.q)
	}

	for _, q := range []Quadrant{0, 5, -1} {
		_, _, err := QuadrantArc(q, 7)
		test.That(t, errors.Is(err, ErrInvalidQuadrant), q)
		test.That(t, !q.Valid())
	}
}

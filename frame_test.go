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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestFrameRoundTrip(t *testing.T) {
	frames := []Frame{{Width: 640, Height: 480}, {Width: 7, Height: 3}, {Width: 1, Height: 1}}
	points := []vec.Vec2{{X: 0, Y: 0}, {X: 10.5, Y: -3.25}, {X: -320, Y: 240}, {X: 1e4, Y: -1e4}}
	for _, f := range frames {
		for _, p := range points {
			if got := f.ToCartesian(f.ToCanvas(p)); got != p {
				t.Errorf("%v: ToCartesian(ToCanvas(%v)) = %v", f, p, got)
			}
			px := Pixel{X: p.X + 3, Y: p.Y * 2}
			if got := f.ToCanvas(f.ToCartesian(px)); got != px {
				t.Errorf("%v: ToCanvas(ToCartesian(%v)) = %v", f, px, got)
			}
		}
	}
}

func TestToCanvas(t *testing.T) {
	f := Frame{Width: 200, Height: 100}
	cases := []struct {
		in   vec.Vec2
		want Pixel
	}{
		{vec.Vec2{}, Pixel{X: 100, Y: 50}},
		{vec.Vec2{X: -100, Y: 50}, Pixel{X: 0, Y: 0}},
		{vec.Vec2{X: 100, Y: -50}, Pixel{X: 200, Y: 100}},
		{vec.Vec2{X: 1, Y: 1}, Pixel{X: 101, Y: 49}},
	}
	for _, c := range cases {
		if got := f.ToCanvas(c.in); got != c.want {
			t.Errorf("ToCanvas(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPolarRoundTrip(t *testing.T) {
	origin := vec.Vec2{X: 3, Y: -2}
	for _, a := range []float64{0, 30, 89.5, 90, 135, 180, 225, 270, 359} {
		for _, r := range []float64{0.5, 1, 80} {
			p := PolarToCartesian(Polar{Angle: a, Radius: r}, origin)
			pp := CartesianToPolar(p, origin)
			if math.Abs(pp.Radius-r) > 1e-9 {
				t.Errorf("radius: got %g, want %g", pp.Radius, r)
			}
			if math.Abs(pp.Angle-a) > 1e-9 {
				t.Errorf("angle: got %g, want %g", pp.Angle, a)
			}
		}
	}
}

func TestCartesianToPolarQuadrants(t *testing.T) {
	cases := []struct {
		p     vec.Vec2
		angle float64
	}{
		{vec.Vec2{X: 1, Y: 1}, 45},
		{vec.Vec2{X: -1, Y: 1}, 135},
		{vec.Vec2{X: -1, Y: -1}, 225},
		{vec.Vec2{X: 1, Y: -1}, 315},
		{vec.Vec2{X: 0, Y: 0}, 0},
	}
	for _, c := range cases {
		got := CartesianToPolar(c.p, vec.Vec2{})
		if math.Abs(got.Angle-c.angle) > 1e-9 {
			t.Errorf("CartesianToPolar(%v).Angle = %g, want %g", c.p, got.Angle, c.angle)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := map[float64]float64{0: 0, 360: 0, -90: 270, 725: 5, -720: 0}
	for in, want := range cases {
		if got := NormalizeAngle(in); got != want {
			t.Errorf("NormalizeAngle(%g) = %g, want %g", in, got, want)
		}
	}
}

func TestAffine(t *testing.T) {
	rot := Rotation(90, vec.Vec2{X: 10, Y: 0})
	got := rot.Apply(vec.Vec2{X: 1, Y: 0})
	if math.Abs(got.X-10) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("Rotation(90).Apply = %v, want (10, 1)", got)
	}

	// m.Then(n) applies m first
	shift := Affine{{1, 0, 5}, {0, 1, 0}}
	comp := shift.Then(Rotation(90, vec.Vec2{}))
	got = comp.Apply(vec.Vec2{X: 1, Y: 0})
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-6) > 1e-12 {
		t.Errorf("composition = %v, want (0, 6)", got)
	}

	if IdentityAffine.Apply(vec.Vec2{X: 2, Y: 3}) != (vec.Vec2{X: 2, Y: 3}) {
		t.Error("identity moved a point")
	}
}

func TestAffineMatrix(t *testing.T) {
	a := Affine{{1, 2, 3}, {4, 5, 6}}
	m := a.Matrix()
	p := vec.Vec2{X: 7, Y: -1}
	want := a.Apply(p)
	got := vec.Vec2{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
	if got != want {
		t.Errorf("matrix maps %v to %v, affine to %v", p, got, want)
	}
}

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
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestNormalizeSweep(t *testing.T) {
	cases := []struct {
		start, end float64
		want       float64
	}{
		{0, 90, 90},
		{45, 45, 45},
		{270, 90, 450},
		{350, 10, 370},
		{720, 30, 750},
		{0, 720, 720},
		{-10, -20, 340},
		{-90, -180, 180},
		{10, -800, 280},
	}
	for _, c := range cases {
		s, e := NormalizeSweep(c.start, c.end)
		if s != c.start || e != c.want {
			t.Errorf("NormalizeSweep(%g, %g) = %g, %g, want %g, %g", c.start, c.end, s, e, c.start, c.want)
		}
		if e < s {
			t.Errorf("NormalizeSweep(%g, %g): end before start", c.start, c.end)
		}
		// the end only moves by whole turns
		if turns := (e - c.end) / 360; turns != math.Round(turns) {
			t.Errorf("NormalizeSweep(%g, %g): end moved by %g turns", c.start, c.end, turns)
		}
	}
}

func TestArcStep(t *testing.T) {
	if got, want := ArcStep(0.25), 45/math.Pi; got != want {
		t.Errorf("ArcStep(0.25) = %g, want %g", got, want)
	}
	// a step moves a quarter pixel along the circumference
	for _, r := range []float64{1, 10, 80, 1000} {
		arc := ArcStep(r) * math.Pi / 180 * r
		if math.Abs(arc-0.25) > 1e-12 {
			t.Errorf("radius %g: step length %g", r, arc)
		}
	}
}

func TestTraceArc(t *testing.T) {
	var angles []float64
	TraceArc(vec.Vec2{}, 10, 30, 30, func(_ vec.Vec2, a float64) {
		angles = append(angles, a)
	})
	if len(angles) != 1 || angles[0] != 30 {
		t.Errorf("zero sweep: got %v, want [30]", angles)
	}

	angles = angles[:0]
	TraceArc(vec.Vec2{}, 0, 0, 360, func(_ vec.Vec2, a float64) {
		angles = append(angles, a)
	})
	if len(angles) == 0 {
		t.Fatal("radius 0 produced no points")
	}
	for i := 1; i < len(angles); i++ {
		if angles[i] <= angles[i-1] {
			t.Fatalf("angles not increasing at %d", i)
		}
	}
	if last := angles[len(angles)-1]; last > 360+1e-9 {
		t.Errorf("last angle %g beyond the end", last)
	}
}

// TestArcDistance checks that every plotted pixel lies within half the
// arc width of the circle, up to pixel quantization.
func TestArcDistance(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cases := []ArcSpec{
		{Radius: 40, Start: 0, End: 360, Width: 1},
		{Radius: 40, Start: 10, End: 200, Width: 7},
		{Center: vec.Vec2{X: 20, Y: -10}, Radius: 25.5, Start: 300, End: 60, Width: 4},
		{Radius: 1, Start: 0, End: 90, Width: 0},
	}
	for i, spec := range cases {
		spec.Color = black
		c := NewCanvas(128, 128, white)
		c.DrawArc(spec)

		tol := max(spec.Width, 1)/2 + 0.5 + math.Sqrt2/2
		count := 0
		for y := range c.Height {
			for x := range c.Width {
				if c.RGBAAt(x, y) != black {
					continue
				}
				count++
				p := c.ToCartesian(Pixel{X: float64(x) + 0.5, Y: float64(y) + 0.5})
				d := p.Sub(spec.Center).Length()
				if math.Abs(d-spec.Radius) > tol {
					t.Errorf("case %d: pixel (%d,%d) at distance %.2f, radius %g", i, x, y, d, spec.Radius)
				}
			}
		}
		if count == 0 {
			t.Errorf("case %d: nothing drawn", i)
		}
	}
}

func TestArcAntialias(t *testing.T) {
	col := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	c := NewCanvas(100, 100, color.White)
	c.DrawArc(ArcSpec{Radius: 30, Start: 0, End: 360, Width: 6, Color: col, Antialias: true})

	var core, edge int
	for y := range c.Height {
		for x := range c.Width {
			switch c.RGBAAt(x, y) {
			case col:
				core++
			case color.RGBA{R: 171, A: 255}:
				edge++
			}
		}
	}
	if core == 0 || edge == 0 {
		t.Errorf("core=%d edge=%d, want both non-zero", core, edge)
	}
}

func TestDarkenThird(t *testing.T) {
	cases := []struct {
		in, want color.RGBA
	}{
		{color.RGBA{R: 255, A: 255}, color.RGBA{R: 171, A: 255}},
		{color.RGBA{A: 255}, color.RGBA{A: 255}},
		{color.RGBA{R: 3, G: 3, B: 3, A: 255}, color.RGBA{R: 3, G: 3, B: 3, A: 255}},
	}
	for _, c := range cases {
		if got := toRGBA(darkenThird(c.in)); got != c.want {
			t.Errorf("darkenThird(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

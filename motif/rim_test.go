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
	"testing"

	"github.com/tdewolff/test"
	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/shade"
	"seehuhn.de/go/geom/vec"
)

// near reports whether all channels of a and b differ by at most tol.
func near(a color.RGBA, b color.Color, tol int) bool {
	c := color.RGBAModel.Convert(b).(color.RGBA)
	d := func(x, y uint8) int { return max(int(x)-int(y), int(y)-int(x)) }
	return d(a.R, c.R) <= tol && d(a.G, c.G) <= tol && d(a.B, c.B) <= tol
}

func TestRim(t *testing.T) {
	face := shade.HSV{H: 30, S: 37, V: 100}
	flare := shade.HSV{H: 26, S: 0, V: 90}
	rim := &Rim{
		Radius:     80,
		Width:      15,
		Steps:      7,
		TopWidth:   2,
		Contrast:   30,
		Color:      face,
		ShadowBand: 3,
		Flare:      flare,
		FlareInset: 10,
	}
	c := genart.NewCanvas(200, 200, white)
	rim.Draw(c, vec.Vec2{}, 60, 120)

	at := func(p vec.Vec2) color.RGBA {
		px := c.ToCanvas(p)
		return c.RGBAAt(int(px.X), int(px.Y))
	}
	polar := func(angle, r float64) vec.Vec2 {
		return genart.PolarToCartesian(genart.Polar{Angle: angle, Radius: r}, vec.Vec2{})
	}

	// the top layer spans radii 71.5 to 73.5
	got := at(vec.Vec2{X: 0.5, Y: 72.5})
	test.That(t, near(got, face, 3), "top layer", got)

	got = at(polar(61.5, 72.5))
	test.That(t, near(got, face.WithValue(75), 2), "shadow band", got)

	got = at(vec.Vec2{X: 0.5, Y: 73.5})
	test.That(t, near(got, flare, 3), "flare", got)

	test.T(t, at(polar(130, 72.5)), white, "outside the sweep")
	test.T(t, at(polar(90, 50)), white, "inside the rim")
}

func TestRimDarkensDownwards(t *testing.T) {
	rim := &Rim{Radius: 80, Width: 15, Steps: 7, TopWidth: 2, Contrast: 30, Color: shade.HSV{H: 30, S: 37, V: 100}}
	c := genart.NewCanvas(200, 200, black)
	rim.Draw(c, vec.Vec2{}, 45, 135)

	// the lowest layer is only visible at its inner edge
	inner := c.RGBAAt(100, 100-66)
	top := c.RGBAAt(100, 100-73)
	test.That(t, int(inner.R)+int(inner.G)+int(inner.B) < int(top.R)+int(top.G)+int(top.B),
		"lower layers are darker", inner, top)
}

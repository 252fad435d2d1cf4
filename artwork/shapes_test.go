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

package artwork

import (
	"image"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"seehuhn.de/go/genart"
	"seehuhn.de/go/geom/vec"
)

func TestCubesTile(t *testing.T) {
	a := DefaultCubes()
	top := a.Faces(vec.Vec2{})[1]
	step := a.Height + a.ShortDiag/2

	// the top face of a cube touches the left face of its upper right
	// neighbour along a full edge
	left := a.Faces(vec.Vec2{X: a.LongDiag / 2, Y: step})[0]
	test.T(t, top[3], left[0])
	test.T(t, top[2], left[1])

	bases, err := a.Bases()
	test.Error(t, err)
	hasOrigin := false
	for _, p := range bases {
		if p == (vec.Vec2{}) {
			hasOrigin = true
		}
		k := p.Y / step
		test.Float(t, k, math.Round(k), "rows", p)
	}
	test.That(t, hasOrigin, "no cube at the centre")
}

func TestCrossesCanvasSize(t *testing.T) {
	a := DefaultCrosses()
	w, h := a.CanvasSize()
	test.T(t, w, 1360)
	test.T(t, h, 800)

	c, err := small(a).Render(0)
	test.Error(t, err)
	test.T(t, c.Width, 240)
	test.T(t, c.Height, 160)
}

func TestRhomb(t *testing.T) {
	a := DefaultRhombs()
	f := genart.Frame{Width: 900, Height: 900}

	pts, light := a.Rhomb(f, 0, 0)
	test.Float(t, light, (618.0-450)*100/450)
	test.T(t, pts[0], vec.Vec2{X: -450, Y: 450})
	test.T(t, pts[1], vec.Vec2{X: -437, Y: 438})
	test.T(t, pts[2], vec.Vec2{X: -425, Y: 425})
	test.T(t, pts[3], vec.Vec2{X: -438, Y: 437})

	// near the centre the rhombus is a full square, with the lightness
	// clamped
	pts, light = a.Rhomb(f, 18, 18)
	test.T(t, light, 80.0)
	test.T(t, pts[1], f.ToCartesian(genart.Pixel{X: 475, Y: 450}))
}

func TestCellsGenerate(t *testing.T) {
	a := DefaultCells()
	cells := a.Generate(newRand(3))
	test.T(t, len(cells), a.Cells)
	for i, cell := range cells {
		n := len(cell.Corners)
		test.That(t, n == 3 || n == 4, "corners", i, n)
		test.That(t, cell.Color == a.Colors[0] || cell.Color == a.Colors[1] || cell.Color == a.Colors[2])
	}

	again := a.Generate(newRand(3))
	test.T(t, again, cells)
}

func TestCellSpan(t *testing.T) {
	rect := Cell{Corners: []image.Point{{10, 20}, {50, 20}, {50, 80}, {10, 80}}}
	y0, y1, ok := rect.span(30)
	test.That(t, ok)
	test.T(t, [2]int{y0, y1}, [2]int{20, 80})
	_, _, ok = rect.span(51)
	test.That(t, !ok)

	p, q, ok := rect.topEdge()
	test.That(t, ok)
	test.T(t, p, image.Pt(10, 20))
	test.T(t, q, image.Pt(50, 20))

	// lower left triangle: the hypotenuse runs from the top left to the
	// bottom right corner
	tri := Cell{Corners: []image.Point{{10, 20}, {50, 80}, {10, 80}}}
	y0, y1, ok = tri.span(30)
	test.That(t, ok)
	test.T(t, [2]int{y0, y1}, [2]int{50, 80})
	_, _, ok = tri.topEdge()
	test.That(t, !ok, "triangle has no top edge")
}

func TestCellsPaint(t *testing.T) {
	a := DefaultCells()
	a.Noise = 0
	c := genart.NewCanvas(100, 100, a.Background)
	cell := Cell{
		Corners: []image.Point{{20, 20}, {60, 20}, {60, 60}, {20, 60}},
		Color:   a.Colors[1],
	}
	a.paint(c, newRand(0), []Cell{cell})

	bg := c.RGBAAt(99, 0)
	test.That(t, c.RGBAAt(40, 40) != bg, "cell not painted")

	// the shadow is offset by (5, 5) and lies below the cell
	sh := c.RGBAAt(63, 63)
	test.That(t, sh.R < bg.R || sh.G < bg.G || sh.B < bg.B, "no shadow", sh, bg)
	test.T(t, c.RGBAAt(70, 70), bg, "beyond the shadow")
	test.T(t, c.RGBAAt(10, 63), bg, "left of the shadow")

	// the highlight is brighter than the gradient below it
	hi := c.RGBAAt(40, 23)
	lo := c.RGBAAt(40, 30)
	test.That(t, int(hi.R)+int(hi.G)+int(hi.B) > int(lo.R)+int(lo.G)+int(lo.B), "highlight", hi, lo)
}

func TestSticksStayInside(t *testing.T) {
	a := DefaultSticks()
	a.Size = Size{300, 300}
	a.Radius = 100
	a.Sticks = 200
	c, err := a.Render(11)
	test.Error(t, err)

	bg := c.RGBAAt(0, 0)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.ToCartesian(genart.Pixel{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			if math.Hypot(p.X, p.Y) > a.Radius+3 {
				test.T(t, c.RGBAAt(x, y), bg, "pixel", x, y)
			}
		}
	}
}

func TestHexagonLabels(t *testing.T) {
	a := small(DefaultHexagons()).(*Hexagons)
	c1, err := a.Render(0)
	test.Error(t, err)
	a.Labels = true
	c2, err := a.Render(0)
	test.Error(t, err)
	test.That(t, pixelHash(c1) != pixelHash(c2), "labels missing")
}

func TestStarsPins(t *testing.T) {
	a := DefaultStars()
	g, err := a.Pins()
	test.Error(t, err)
	test.That(t, g.Len() > 20)
	found := false
	for _, p := range g.Pins() {
		if p.Pos == (vec.Vec2{}) {
			found = true
		}
	}
	test.That(t, found, "no pin at the centre")
}

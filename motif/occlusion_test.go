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
	"image"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/lattice"
	"seehuhn.de/go/geom/vec"
)

type arcCall struct {
	center     vec.Vec2
	start, end float64
}

// arcRecorder remembers the arcs it is asked to draw.
type arcRecorder struct {
	calls []arcCall
}

func (r *arcRecorder) DrawArc(_ *genart.Canvas, center vec.Vec2, start, end float64) {
	r.calls = append(r.calls, arcCall{center, start, end})
}

func inSweep(angle, start, end float64) bool {
	start, end = genart.NormalizeSweep(start, end)
	for angle < start {
		angle += 360
	}
	return angle <= end
}

func inAnnulus(q, center vec.Vec2, inner, outer float64) bool {
	d := q.Sub(center).Length()
	return d >= inner && d < outer
}

// ownership paints the recorded arcs into a map from sample points to the
// index of the pin which drew them last. Sample points are at the centres
// of the unit squares.
func ownership(calls []arcCall, index map[vec.Vec2]int, inner, outer float64) map[vec.Vec2]int {
	owner := make(map[vec.Vec2]int)
	for _, call := range calls {
		id := index[call.center]
		x0, y0 := math.Floor(call.center.X-outer), math.Floor(call.center.Y-outer)
		for x := x0; x <= call.center.X+outer; x++ {
			for y := y0; y <= call.center.Y+outer; y++ {
				q := vec.Vec2{X: x + 0.5, Y: y + 0.5}
				if !inAnnulus(q, call.center, inner, outer) {
					continue
				}
				if !inSweep(genart.CartesianToPolar(q, call.center).Angle, call.start, call.end) {
					continue
				}
				owner[q] = id
			}
		}
	}
	return owner
}

// TestFlipFlopLens checks that for each pair of adjacent rings in a 4x4
// lattice, each half of the region covered by both rings is drawn by
// exactly one of them and has no gaps. Points which are also covered by a
// third ring are ignored.
func TestFlipFlopLens(t *testing.T) {
	dist, err := NewRingDistribution(2, 5)
	test.Error(t, err)
	s := dist.PinDistance
	test.T(t, s, 23.0)
	g, err := lattice.Generate(image.Pt(int(2*s), int(2*s)), s, lattice.Plain)
	test.Error(t, err)
	test.T(t, g.NumRows(), 4)
	test.T(t, len(g.Rows()[0]), 4)

	inner := dist.Bands[len(dist.Bands)-1].Inner
	outer := dist.Radius
	pins := g.Pins()
	index := make(map[vec.Vec2]int)
	for i, p := range pins {
		index[p.Pos] = i
	}

	rec := &arcRecorder{}
	FlipFlop{}.Render(nil, g, rec)
	owner := ownership(rec.calls, index, inner, outer)

	checkLens := func(a, b *lattice.Pin, horizontal bool) {
		t.Helper()
		owners := [2]map[int]bool{{}, {}}
		for x := math.Floor(min(a.Pos.X, b.Pos.X) - outer); x <= max(a.Pos.X, b.Pos.X)+outer; x++ {
			for y := math.Floor(min(a.Pos.Y, b.Pos.Y) - outer); y <= max(a.Pos.Y, b.Pos.Y)+outer; y++ {
				q := vec.Vec2{X: x + 0.5, Y: y + 0.5}
				if !inAnnulus(q, a.Pos, inner, outer) || !inAnnulus(q, b.Pos, inner, outer) {
					continue
				}
				third := false
				for _, p := range pins {
					if p != a && p != b && inAnnulus(q, p.Pos, inner, outer) {
						third = true
						break
					}
				}
				if third {
					continue
				}

				// the line through both centres splits the lens into halves
				off := q.X - a.Pos.X
				if horizontal {
					off = q.Y - a.Pos.Y
				}
				if math.Abs(off) < 1 {
					continue
				}
				side := 0
				if off > 0 {
					side = 1
				}

				id, ok := owner[q]
				test.That(t, ok, "gap at", q)
				test.That(t, id == index[a.Pos] || id == index[b.Pos], "foreign owner at", q)
				owners[side][id] = true
			}
		}
		for side := range owners {
			test.T(t, len(owners[side]), 1, "owners of lens half", a.Pos, b.Pos, side)
		}
	}

	for _, p := range pins {
		if right := g.At(p.Col+1, p.Row); right != nil {
			checkLens(p, right, true)
		}
		if below := g.At(p.Col, p.Row+1); below != nil {
			checkLens(p, below, false)
		}
	}
}

func TestFlipFlopHalves(t *testing.T) {
	g, err := lattice.Generate(image.Pt(100, 60), 20, lattice.Plain)
	test.Error(t, err)
	var ff FlipFlop
	for _, p := range g.Pins() {
		want := Upper
		if p.ColParity() == 1 {
			want = Lower
		}
		test.T(t, ff.Halves(p), want, p.Col, p.Row)
		if p.SymCol == 0 {
			test.T(t, ff.Halves(p), Upper, "middle column")
		}
	}

	rec := &arcRecorder{}
	ff.Render(nil, g, rec)
	lower := 0
	for _, p := range g.Pins() {
		if ff.Halves(p) == Lower && p.Row < g.NumRows()-1 {
			lower++
		}
	}
	test.T(t, len(rec.calls), g.Len()+lower)

	restored := 0
	for _, call := range rec.calls {
		if call.start == 180 && call.end == 270 {
			restored++
		}
	}
	test.T(t, restored, lower)
}

func TestHalf(t *testing.T) {
	s, e := Upper.Angles()
	test.T(t, [2]float64{s, e}, [2]float64{0, 180})
	s, e = Lower.Angles()
	test.T(t, [2]float64{s, e}, [2]float64{180, 360})
	test.T(t, Upper.Quadrants(), [2]Quadrant{1, 2})
	test.T(t, Lower.Quadrants(), [2]Quadrant{3, 4})
	test.String(t, Lower.String(), "lower")
}

func TestRowRestore(t *testing.T) {
	g, err := lattice.Generate(image.Pt(200, 200), 100, lattice.Offset)
	test.Error(t, err)

	rec := &arcRecorder{}
	rr := RowRestore{Cross: 7}
	rr.Render(nil, nil, g, rec)
	test.T(t, len(rec.calls), g.Len())

	// rows are processed bottom to top
	rows := g.Rows()
	i := 0
	for k := range rows {
		row := rows[len(rows)-1-k]
		want := [2]float64{187, 263}
		if k%2 == 1 {
			want = [2]float64{277, 353}
		}
		for _, p := range row {
			if p == nil {
				continue
			}
			call := rec.calls[i]
			i++
			test.T(t, call.center, p.Pos)
			test.T(t, [2]float64{call.start, call.end}, want, "row", k)
		}
	}
	test.T(t, rr.Quadrant(0), Quadrant(3))
	test.T(t, rr.Quadrant(5), Quadrant(4))
}

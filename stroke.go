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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Rod is a straight line segment between two Cartesian points.
type Rod struct {
	A, B vec.Vec2
}

// RodStyle determines the outline of a rod.
type RodStyle struct {
	// Width is the full thickness of the rod.
	Width float64

	// Cap is the shape of the two rod ends.
	Cap graphics.LineCapStyle

	// Flatness is the tolerance for round caps. Zero selects a default.
	Flatness float64
}

// Outline returns the outlines of all rods as a single path, to be filled
// with the nonzero winding rule. Every outline runs counter-clockwise.
func (s RodStyle) Outline(rods []Rod) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		o := &rodOutliner{d: max(s.Width, 1) / 2, cap: s.Cap, flatness: s.Flatness}
		if o.flatness <= 0 {
			o.flatness = defaultFlatness
		}
		for _, rod := range rods {
			o.pts = o.pts[:0]
			o.outline(rod)
			if len(o.pts) < 3 {
				continue
			}
			var buf [1]vec.Vec2
			for i, p := range o.pts {
				buf[0] = p
				cmd := path.CmdLineTo
				if i == 0 {
					cmd = path.CmdMoveTo
				}
				if !yield(cmd, buf[:]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

type rodOutliner struct {
	d        float64 // half width
	cap      graphics.LineCapStyle
	flatness float64
	pts      []vec.Vec2
}

func (o *rodOutliner) outline(rod Rod) {
	delta := rod.B.Sub(rod.A)
	length := delta.Length()
	if length == 0 {
		// a zero-length rod has no orientation
		switch o.cap {
		case graphics.LineCapRound:
			o.addArc(rod.A, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			o.addSquare(rod.A, vec.Vec2{X: 1, Y: 0})
		}
		return
	}

	T := delta.Mul(1 / length)
	N := vec.Vec2{X: -T.Y, Y: T.X}

	// right side from A to B, cap at B, left side back to A, cap at A
	o.pts = append(o.pts, rod.A.Sub(N.Mul(o.d)), rod.B.Sub(N.Mul(o.d)))
	o.addCap(rod.B, T)
	o.pts = append(o.pts, rod.B.Add(N.Mul(o.d)), rod.A.Add(N.Mul(o.d)))
	o.addCap(rod.A, T.Mul(-1))
}

// addCap adds the end of a rod at P. T points away from the rod.
// The offset points on either side are added by the caller.
func (o *rodOutliner) addCap(P, T vec.Vec2) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch o.cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(o.d))
		o.pts = append(o.pts, ext.Sub(N.Mul(o.d)), ext.Add(N.Mul(o.d)))

	case graphics.LineCapRound:
		// from -N through T to N, counter-clockwise
		o.addArc(P, N.Mul(-1), math.Pi, false)
		o.pts = o.pts[:len(o.pts)-1]
	}
}

// addArc appends points on the circle of radius o.d around center.
// startDir is the unit vector towards the first point, sweep is in radians
// (positive is counter-clockwise).
func (o *rodOutliner) addArc(center, startDir vec.Vec2, sweep float64, includeStart bool) {
	// the sagitta of a chord with angle θ is r(1 - cos(θ/2))
	n := 1
	if o.d > o.flatness {
		step := 2 * math.Acos(1-o.flatness/o.d)
		if step > 0 {
			n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
		}
	}

	dt := sweep / float64(n)
	first := 1
	if includeStart {
		first = 0
	}
	last := n
	if sweep >= 2*math.Pi {
		last = n - 1
	}
	for i := first; i <= last; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		o.pts = append(o.pts, center.Add(dir.Mul(o.d)))
	}
}

// addSquare adds a square of side 2d centred at center, oriented by T.
func (o *rodOutliner) addSquare(center, T vec.Vec2) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	o.pts = append(o.pts,
		center.Sub(T.Mul(o.d)).Sub(N.Mul(o.d)),
		center.Add(T.Mul(o.d)).Sub(N.Mul(o.d)),
		center.Add(T.Mul(o.d)).Add(N.Mul(o.d)),
		center.Sub(T.Mul(o.d)).Add(N.Mul(o.d)),
	)
}

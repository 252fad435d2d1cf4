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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule selects how the interior of a path is determined.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// edge is a line segment in canvas space.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Filler computes the fraction of each pixel covered by a filled path.
// Paths are given in Cartesian space and mapped to the canvas by CTM.
// Internal buffers grow as needed and are reused between calls.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	// CTM maps path coordinates to canvas coordinates.
	CTM matrix.Matrix

	// Clip bounds the output, in canvas coordinates.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in pixels.
	Flatness float64

	cover     []float32
	area      []float32
	edges     []edge
	activeIdx []int
	crossings []float64

	bboxEmpty                  bool
	bxMin, bxMax, byMin, byMax float64
}

// NewFiller returns a Filler with identity CTM and the given clip rectangle.
func NewFiller(clip rect.Rect) *Filler {
	return &Filler{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default parameters while keeping buffer capacity.
func (f *Filler) Reset(clip rect.Rect) {
	f.CTM = matrix.Identity
	f.Clip = clip
	f.Flatness = defaultFlatness
	f.cover = f.cover[:0]
	f.area = f.area[:0]
	f.edges = f.edges[:0]
	f.activeIdx = f.activeIdx[:0]
	f.crossings = f.crossings[:0]
}

// Fill rasterizes p. Coverage is delivered row by row through emit; the
// coverage slice is only valid for the duration of the call.
func (f *Filler) Fill(p path.Path, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := f.collectEdges(p)
	if !ok {
		return
	}
	f.scan(xMin, xMax, yMin, yMax, rule, emit)
}

func (f *Filler) devLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*v.X + f.CTM[2]*v.Y,
		Y: f.CTM[1]*v.X + f.CTM[3]*v.Y,
	}
}

func (f *Filler) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if d := f.devLinear(e).Length(); d > f.Flatness {
		n = int(math.Ceil(math.Sqrt(d / f.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		f.addEdge(prev, pt)
		prev = pt
	}
}

func (f *Filler) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := f.devLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.devLinear(p1.Sub(p2.Mul(2)).Add(p3))

	// Wang's formula
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if k := math.Sqrt(3 * m / (4 * f.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		f.addEdge(prev, pt)
		prev = pt
	}
}

// collectEdges flattens p into the edge list and returns the bounding box
// of all edges, clamped to the clip rectangle.
func (f *Filler) collectEdges(p path.Path) (xMin, xMax, yMin, yMax int, ok bool) {
	f.edges = f.edges[:0]
	f.bboxEmpty = true

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				f.addEdge(current, start)
			}
			current = pts[0]
			start = current
		case path.CmdLineTo:
			f.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			f.flattenQuadratic(current, pts[0], pts[1])
			current = pts[1]
		case path.CmdCubeTo:
			f.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]
		case path.CmdClose:
			if current != start {
				f.addEdge(current, start)
			}
			current = start
		}
	}
	// fills close open subpaths implicitly
	if current != start {
		f.addEdge(current, start)
	}

	if len(f.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(f.bxMin)), int(f.Clip.LLx))
	xMax = min(int(math.Floor(f.bxMax))+1, int(f.Clip.URx))
	yMin = max(int(math.Floor(f.byMin)), int(f.Clip.LLy))
	yMax = min(int(math.Floor(f.byMax))+1, int(f.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (f *Filler) addEdge(p0, p1 vec.Vec2) {
	m := f.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	f.edges = append(f.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if f.bboxEmpty {
		f.bxMin, f.bxMax = min(x0, x1), max(x0, x1)
		f.byMin, f.byMax = min(y0, y1), max(y0, y1)
		f.bboxEmpty = false
		return
	}
	f.bxMin = min(f.bxMin, x0, x1)
	f.bxMax = max(f.bxMax, x0, x1)
	f.byMin = min(f.byMin, y0, y1)
	f.byMax = max(f.byMax, y0, y1)
}

// Each edge crossing a pixel adds its signed vertical extent to cover and
// the part of that extent right of the crossing to area. Integrating a
// scanline from the left gives the signed area of the path in each pixel.

// accumulate adds the contribution of e within scanline y to cover and area,
// which are indexed by x - bxMin.
func (f *Filler) accumulate(e *edge, y int, bxMin, bxMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	if pixRight < bxMin {
		v := sign * float32(yBot-yTop)
		f.cover[0] += v
		f.area[0] += v
		return
	}
	if pixLeft >= bxMax {
		return
	}
	if pixLeft == pixRight {
		f.deposit(e, yTop, yBot, sign, bxMin, bxMax)
		return
	}

	// split at every vertical pixel boundary the edge crosses
	f.crossings = append(f.crossings[:0], yTop, yBot)
	dydx := 1 / e.dxdy
	for x := pixLeft + 1; x <= pixRight; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > yTop && yx < yBot {
			f.crossings = append(f.crossings, yx)
		}
	}
	slices.Sort(f.crossings)
	for i := range len(f.crossings) - 1 {
		if f.crossings[i+1] > f.crossings[i] {
			f.deposit(e, f.crossings[i], f.crossings[i+1], sign, bxMin, bxMax)
		}
	}
}

// deposit adds a piece of e which lies within a single pixel column.
func (f *Filler) deposit(e *edge, yTop, yBot float64, sign float32, bxMin, bxMax int) {
	v := sign * float32(yBot-yTop)
	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	pix := int(math.Floor(xMid))
	switch {
	case pix < bxMin:
		f.cover[0] += v
		f.area[0] += v
	case pix < bxMax:
		i := pix - bxMin
		f.cover[i] += v
		f.area[i] += v * float32(1-(xMid-float64(pix)))
	}
}

// scan walks the scanlines of the bounding box with an active edge list.
func (f *Filler) scan(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	f.cover = slices.Grow(f.cover[:0], width)[:width]
	f.area = slices.Grow(f.area[:0], width)[:width]

	slices.SortFunc(f.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	f.activeIdx = f.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf, yfNext := float64(y), float64(y+1)

		for next < len(f.edges) && min(f.edges[next].y0, f.edges[next].y1) < yfNext {
			f.activeIdx = append(f.activeIdx, next)
			next++
		}
		if len(f.activeIdx) == 0 {
			continue
		}

		clear(f.cover)
		clear(f.area)
		touched := false
		for i := 0; i < len(f.activeIdx); {
			e := &f.edges[f.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				f.activeIdx[i] = f.activeIdx[len(f.activeIdx)-1]
				f.activeIdx = f.activeIdx[:len(f.activeIdx)-1]
				continue
			}
			f.accumulate(e, y, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		if rule == NonZero {
			integrateNonZero(f.cover, f.area)
		} else {
			integrateEvenOdd(f.cover, f.area)
		}
		if trimmed, offset := trimZeros(f.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// integrateNonZero turns accumulated cover/area into coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// integrateEvenOdd turns accumulated cover/area into coverage, in place.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		mod := raw - 2*float32(int(raw/2))
		d := 1 - mod
		if d < 0 {
			d = -d
		}
		cover[i] = 1 - d
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	horizontalEdgeThreshold = 1e-10
)

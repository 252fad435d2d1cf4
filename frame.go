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
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Pixel is a point in canvas space: origin at the top-left corner, y grows
// downwards. Cartesian points (origin at the canvas centre, y grows upwards)
// are represented by [vec.Vec2]. The two are converted only by a [Frame].
type Pixel struct {
	X, Y float64
}

// Polar is a point in polar coordinates. Angle is in degrees, measured
// counter-clockwise from the positive x-axis of Cartesian space.
type Polar struct {
	Angle  float64
	Radius float64
}

// Frame describes the canvas geometry and converts between Cartesian and
// canvas coordinates.
type Frame struct {
	Width, Height int
}

// ToCanvas maps a Cartesian point to canvas space.
func (f Frame) ToCanvas(p vec.Vec2) Pixel {
	return Pixel{
		X: p.X + float64(f.Width)/2,
		Y: float64(f.Height)/2 - p.Y,
	}
}

// ToCartesian maps a canvas point to Cartesian space.
// It is the exact inverse of ToCanvas.
func (f Frame) ToCartesian(px Pixel) vec.Vec2 {
	return vec.Vec2{
		X: px.X - float64(f.Width)/2,
		Y: float64(f.Height)/2 - px.Y,
	}
}

// PolarToCanvas converts a polar point around the Cartesian origin to canvas
// space. This is the path by which every polar feature reaches pixels.
func (f Frame) PolarToCanvas(pp Polar, origin vec.Vec2) Pixel {
	return f.ToCanvas(PolarToCartesian(pp, origin))
}

// CTM returns the matrix mapping Cartesian space to canvas space, in the
// PDF element order used by [Filler].
func (f Frame) CTM() matrix.Matrix {
	return matrix.Matrix{1, 0, 0, -1, float64(f.Width) / 2, float64(f.Height) / 2}
}

// Clip returns the canvas rectangle in canvas space.
func (f Frame) Clip() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(f.Width), URy: float64(f.Height)}
}

// Bounds returns the canvas rectangle as an image rectangle.
func (f Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// PolarToCartesian converts pp to Cartesian coordinates around origin.
func PolarToCartesian(pp Polar, origin vec.Vec2) vec.Vec2 {
	theta := pp.Angle * math.Pi / 180
	return vec.Vec2{
		X: origin.X + pp.Radius*math.Cos(theta),
		Y: origin.Y + pp.Radius*math.Sin(theta),
	}
}

// CartesianToPolar converts p to polar coordinates around origin.
// The angle is in the range [0, 360). A point at the origin has angle 0.
func CartesianToPolar(p, origin vec.Vec2) Polar {
	dx, dy := p.X-origin.X, p.Y-origin.Y
	r := math.Hypot(dx, dy)
	if r == 0 {
		return Polar{}
	}
	a := math.Atan2(dy, dx) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return Polar{Angle: a, Radius: r}
}

// NormalizeAngle reduces a to the range [0, 360).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Affine is a 2D affine map in row form:
//
//	x' = A[0][0]*x + A[0][1]*y + A[0][2]
//	y' = A[1][0]*x + A[1][1]*y + A[1][2]
type Affine [2][3]float64

// IdentityAffine leaves points unchanged.
var IdentityAffine = Affine{{1, 0, 0}, {0, 1, 0}}

// Rotation returns the map rotating by deg degrees (counter-clockwise) and
// then translating by origin.
func Rotation(deg float64, origin vec.Vec2) Affine {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Affine{
		{c, -s, origin.X},
		{s, c, origin.Y},
	}
}

// Apply maps p.
func (m Affine) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// Then returns the map which applies m first and n second.
func (m Affine) Then(n Affine) Affine {
	var out Affine
	for i := range 2 {
		for j := range 3 {
			v := n[i][0]*m[0][j] + n[i][1]*m[1][j]
			if j == 2 {
				v += n[i][2]
			}
			out[i][j] = v
		}
	}
	return out
}

// Matrix converts m to the element order of [matrix.Matrix].
func (m Affine) Matrix() matrix.Matrix {
	return matrix.Matrix{m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2]}
}

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
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Canvas is the pixel buffer artworks are rendered into.
// Writes outside the canvas are dropped.
type Canvas struct {
	Frame

	img    *image.RGBA
	filler *Filler
}

// NewCanvas allocates a width x height canvas filled with bg.
// Non-positive dimensions are clamped to 1.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	width = max(width, 1)
	height = max(height, 1)
	f := Frame{Width: width, Height: height}
	c := &Canvas{
		Frame:  f,
		img:    image.NewRGBA(f.Bounds()),
		filler: NewFiller(f.Clip()),
	}
	if bg != nil {
		c.FillRect(f.Bounds(), bg)
	}
	return c
}

// Image returns the underlying image. Drawing libraries and encoders
// operate on it directly.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// In reports whether the pixel (x, y) lies on the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// Set paints the pixel (x, y) with col.
func (c *Canvas) Set(x, y int, col color.Color) {
	if !c.In(x, y) {
		return
	}
	c.img.SetRGBA(x, y, toRGBA(col))
}

// RGBAAt returns the colour of pixel (x, y). Pixels outside the canvas are
// reported as transparent black.
func (c *Canvas) RGBAAt(x, y int) color.RGBA {
	if !c.In(x, y) {
		return color.RGBA{}
	}
	return c.img.RGBAAt(x, y)
}

// Plot paints the pixel containing px.
func (c *Canvas) Plot(px Pixel, col color.Color) {
	c.Set(int(math.Floor(px.X)), int(math.Floor(px.Y)), col)
}

// PlotCartesian paints the pixel containing the Cartesian point p.
func (c *Canvas) PlotCartesian(p vec.Vec2, col color.Color) {
	c.Plot(c.ToCanvas(p), col)
}

// FillRect paints the canvas-space rectangle r.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	rgba := toRGBA(col)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.img.Pix[c.img.PixOffset(r.Min.X, y):c.img.PixOffset(r.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = rgba.R, rgba.G, rgba.B, rgba.A
		}
	}
}

// Fill paints the region enclosed by the Cartesian path p.
// Partially covered pixels are blended with the existing content.
func (c *Canvas) Fill(p path.Path, rule FillRule, col color.Color) {
	rgba := toRGBA(col)
	c.filler.Reset(c.Clip())
	c.filler.CTM = c.CTM()
	c.filler.Fill(p, rule, func(y, xMin int, coverage []float32) {
		off := c.img.PixOffset(xMin, y)
		row := c.img.Pix[off : off+4*len(coverage)]
		for i, a := range coverage {
			blend(row[4*i:4*i+4], rgba, a)
		}
	})
}

// FillCircle paints a disc around the Cartesian point center.
func (c *Canvas) FillCircle(center vec.Vec2, radius float64, col color.Color) {
	if radius <= 0 {
		c.PlotCartesian(center, col)
		return
	}
	c.Fill(Circle(center, radius), NonZero, col)
}

// FillPolygon paints the polygon with the given Cartesian vertices.
func (c *Canvas) FillPolygon(pts []vec.Vec2, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.Fill(Polygon(pts), NonZero, col)
}

// StrokeRods paints the outlines of the given rods.
// All rods are filled together, so overlapping rods do not darken.
func (c *Canvas) StrokeRods(rods []Rod, style RodStyle, col color.Color) {
	if len(rods) == 0 {
		return
	}
	c.Fill(style.Outline(rods), NonZero, col)
}

func toRGBA(col color.Color) color.RGBA {
	if rgba, ok := col.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(col).(color.RGBA)
}

// blend composites the premultiplied colour src with coverage a onto dst.
func blend(dst []byte, src color.RGBA, a float32) {
	if a >= 1 {
		dst[0], dst[1], dst[2], dst[3] = src.R, src.G, src.B, src.A
		return
	}
	if a <= 0 {
		return
	}
	mix := func(d, s uint8) uint8 {
		return uint8(float32(d)*(1-a) + float32(s)*a + 0.5)
	}
	dst[0] = mix(dst[0], src.R)
	dst[1] = mix(dst[1], src.G)
	dst[2] = mix(dst[2], src.B)
	dst[3] = mix(dst[3], src.A)
}

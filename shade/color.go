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

// Package shade computes colours for the genart motifs.
//
// Colours are given as hue, saturation and value (or lightness) with the
// hue in degrees and the other channels in percent, the convention used by
// the artwork parameters. All arithmetic clamps the channels to their
// valid ranges.
package shade

import (
	"image/color"
	"math"
)

// HSV is a colour in the HSV model. H is in [0, 360), S and V are in
// [0, 100].
type HSV struct {
	H float64 `toml:"h"`
	S float64 `toml:"s"`
	V float64 `toml:"v"`
}

// Clamp returns c with the hue reduced modulo 360 and the saturation and
// value clamped to [0, 100]. NaN channels become 0.
func (c HSV) Clamp() HSV {
	return HSV{H: clampHue(c.H), S: Clamp(c.S, 0, 100), V: Clamp(c.V, 0, 100)}
}

// WithValue returns c with the value replaced by v.
func (c HSV) WithValue(v float64) HSV {
	c.V = v
	return c.Clamp()
}

// Darken decreases the value by d percentage points.
func (c HSV) Darken(d float64) HSV {
	c.V -= d
	return c.Clamp()
}

// Lighten increases the value by d percentage points.
func (c HSV) Lighten(d float64) HSV {
	c.V += d
	return c.Clamp()
}

// Shift adds the given offsets to all three channels.
func (c HSV) Shift(dh, ds, dv float64) HSV {
	return HSV{H: c.H + dh, S: c.S + ds, V: c.V + dv}.Clamp()
}

// RGB8 converts c to 8-bit RGB.
func (c HSV) RGB8() (r, g, b uint8) {
	c = c.Clamp()
	s, v := c.S/100, c.V/100

	chroma := v * s
	h := c.H / 60
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - chroma

	var rf, gf, bf float64
	switch {
	case h < 1:
		rf, gf, bf = chroma, x, 0
	case h < 2:
		rf, gf, bf = x, chroma, 0
	case h < 3:
		rf, gf, bf = 0, chroma, x
	case h < 4:
		rf, gf, bf = 0, x, chroma
	case h < 5:
		rf, gf, bf = x, 0, chroma
	default:
		rf, gf, bf = chroma, 0, x
	}
	return to8(rf + m), to8(gf + m), to8(bf + m)
}

// RGBA implements the [color.Color] interface. The colour is opaque.
func (c HSV) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB8()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xffff
}

// HSL is a colour in the HSL model. H is in [0, 360), S and L are in
// [0, 100].
type HSL struct {
	H float64 `toml:"h"`
	S float64 `toml:"s"`
	L float64 `toml:"l"`
}

// Clamp returns c with all channels in their valid ranges.
func (c HSL) Clamp() HSL {
	return HSL{H: clampHue(c.H), S: Clamp(c.S, 0, 100), L: Clamp(c.L, 0, 100)}
}

// RGBA implements the [color.Color] interface. The colour is opaque.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.HSV().RGBA()
}

// HSV converts c to the HSV model.
func (c HSL) HSV() HSV {
	c = c.Clamp()
	s, l := c.S/100, c.L/100
	v := l + s*min(l, 1-l)
	sv := 0.0
	if v > 0 {
		sv = 2 * (1 - l/v)
	}
	return HSV{H: c.H, S: sv * 100, V: v * 100}.Clamp()
}

// FromColor converts an arbitrary colour to HSV.
func FromColor(col color.Color) HSV {
	r, g, b, _ := col.RGBA()
	rf, gf, bf := float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff
	hi := max(rf, gf, bf)
	lo := min(rf, gf, bf)
	d := hi - lo

	var h float64
	switch {
	case d == 0:
		h = 0
	case hi == rf:
		h = 60 * math.Mod((gf-bf)/d, 6)
	case hi == gf:
		h = 60 * ((bf-rf)/d + 2)
	default:
		h = 60 * ((rf-gf)/d + 4)
	}
	s := 0.0
	if hi > 0 {
		s = d / hi
	}
	return HSV{H: h, S: s * 100, V: hi * 100}.Clamp()
}

// Clamp limits x to [lo, hi]. NaN is mapped to lo.
func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clampHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func to8(x float64) uint8 {
	return uint8(Clamp(x*255+0.5, 0, 255))
}

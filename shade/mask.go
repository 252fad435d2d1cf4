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

package shade

import (
	"image/color"

	"seehuhn.de/go/genart"
)

// ShadowMask records which canvas pixels lie in shadow.
// A mask belongs to a single render pass.
type ShadowMask struct {
	width, height int
	dark          []bool
}

// NewShadowMask returns an empty mask for a width x height canvas.
func NewShadowMask(width, height int) *ShadowMask {
	width = max(width, 0)
	height = max(height, 0)
	return &ShadowMask{width: width, height: height, dark: make([]bool, width*height)}
}

func (m *ShadowMask) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0, false
	}
	return y*m.width + x, true
}

// Set marks (dark=true) or clears the pixel (x, y).
func (m *ShadowMask) Set(x, y int, dark bool) {
	if i, ok := m.index(x, y); ok {
		m.dark[i] = dark
	}
}

// Dark reports whether the pixel (x, y) is in shadow.
func (m *ShadowMask) Dark(x, y int) bool {
	i, ok := m.index(x, y)
	return ok && m.dark[i]
}

// MarkColumn puts the pixels (x, y0) to (x, y1), inclusive, into shadow.
func (m *ShadowMask) MarkColumn(x, y0, y1 int) {
	m.setColumn(x, y0, y1, true)
}

// ClearColumn removes the pixels (x, y0) to (x, y1), inclusive, from the
// shadow.
func (m *ShadowMask) ClearColumn(x, y0, y1 int) {
	m.setColumn(x, y0, y1, false)
}

func (m *ShadowMask) setColumn(x, y0, y1 int, dark bool) {
	if x < 0 || x >= m.width {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, m.height-1)
	for y := y0; y <= y1; y++ {
		m.dark[y*m.width+x] = dark
	}
}

// Count returns the number of pixels in shadow.
func (m *ShadowMask) Count() int {
	n := 0
	for _, d := range m.dark {
		if d {
			n++
		}
	}
	return n
}

// Apply darkens every shadowed pixel of c by subtracting depth from each
// colour channel.
func (m *ShadowMask) Apply(c *genart.Canvas, depth uint8) {
	sub := func(v uint8) uint8 {
		if v < depth {
			return 0
		}
		return v - depth
	}
	for y := range min(m.height, c.Height) {
		for x := range min(m.width, c.Width) {
			if !m.dark[y*m.width+x] {
				continue
			}
			p := c.RGBAAt(x, y)
			c.Set(x, y, color.RGBA{R: sub(p.R), G: sub(p.G), B: sub(p.B), A: p.A})
		}
	}
}

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

// Package genart renders geometric raster art.
//
// Drawing happens in Cartesian space, with the origin at the centre of the
// canvas and the y-axis pointing up. A [Frame] converts between Cartesian
// points ([vec.Vec2]), polar points ([Polar]) and canvas pixels ([Pixel]).
// A [Canvas] combines a frame with an RGBA pixel buffer and offers point
// plotting, arcs ([Canvas.DrawArc]) and antialiased region fills.
//
// The sub-packages build on this:
//
//   - shade: colours, value scaling and shadow stipple
//   - lattice: grids of motif centres
//   - motif: rings, crosses, hexagons and occlusion restoration
//   - artwork: complete, configurable artworks
package genart

//go:generate go run ./testcases/export

import "seehuhn.de/go/geom/vec"

// Drawer is implemented by everything that can paint itself onto a canvas
// at a given Cartesian position.
type Drawer interface {
	Draw(c *Canvas, at vec.Vec2)
}

// DrawerFunc adapts a function to the [Drawer] interface.
type DrawerFunc func(c *Canvas, at vec.Vec2)

// Draw calls f(c, at).
func (f DrawerFunc) Draw(c *Canvas, at vec.Vec2) {
	f(c, at)
}

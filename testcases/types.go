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

// Package testcases defines named scenes which are shared by the tests,
// the benchmarks and the export tool.
//
// Geometry scenes use Cartesian coordinates, with the origin at the centre
// of the canvas and the y-axis pointing up. They are drawn in [Ink] on
// [Paper].
package testcases

import (
	"image/color"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/artwork"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Scene defines a single rendering test.
type Scene struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Width  int       // canvas width in pixels
	Height int       // canvas height in pixels
	Op     Operation // what to draw
}

// Operation is the drawing operation of a scene.
type Operation interface {
	isOperation()
}

// Fill fills a path.
type Fill struct {
	Path path.Path
	Rule genart.FillRule
}

func (Fill) isOperation() {}

// Rods strokes a set of rods.
type Rods struct {
	Rods  []genart.Rod
	Style genart.RodStyle
}

func (Rods) isOperation() {}

// Arcs draws arcs in order. Specs without a colour use Ink.
type Arcs struct {
	Specs []genart.ArcSpec
}

func (Arcs) isOperation() {}

// Art renders a configured artwork. The artwork determines the canvas
// size; Width and Height of the scene are ignored.
type Art struct {
	Artwork artwork.Artwork
	Seed    uint64
}

func (Art) isOperation() {}

var (
	Ink   color.Color = color.Black
	Paper color.Color = color.White
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

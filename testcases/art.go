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

package testcases

import (
	"seehuhn.de/go/genart/artwork"
)

var artworkCases = []Scene{
	{Name: "cells", Op: Art{Artwork: cells(), Seed: 1}},
	{Name: "crosses", Op: Art{Artwork: crosses(), Seed: 1}},
	{Name: "cubes", Op: Art{Artwork: cubes(), Seed: 1}},
	{Name: "diamonds", Op: Art{Artwork: diamonds(), Seed: 1}},
	{Name: "hexagons", Op: Art{Artwork: hexagons(false), Seed: 1}},
	{Name: "hexagons_labels", Op: Art{Artwork: hexagons(true), Seed: 1}},
	{Name: "mosaic", Op: Art{Artwork: mosaic(), Seed: 1}},
	{Name: "rhombs", Op: Art{Artwork: rhombs(), Seed: 1}},
	{Name: "rings", Op: Art{Artwork: rings(true), Seed: 1}},
	{Name: "rings_seed2", Op: Art{Artwork: rings(true), Seed: 2}},
	{Name: "rings_plain", Op: Art{Artwork: rings(false), Seed: 1}},
	{Name: "stars", Op: Art{Artwork: stars(), Seed: 1}},
	{Name: "sticks", Op: Art{Artwork: sticks(), Seed: 1}},
	{Name: "stripes", Op: Art{Artwork: stripes(false), Seed: 1}},
	{Name: "stripes_antialias", Op: Art{Artwork: stripes(true), Seed: 1}},
}

// scene sizes keep the artworks small, but large enough to show at least
// one complete motif
var (
	sceneSize      = artwork.Size{Width: 320, Height: 240}
	sceneSizeLarge = artwork.Size{Width: 480, Height: 320}
)

func cells() *artwork.Cells {
	a := artwork.DefaultCells()
	a.Size = sceneSize
	a.AverageCell = 120
	a.Tolerance = 10
	a.Cells = 20
	return a
}

func crosses() *artwork.Crosses {
	a := artwork.DefaultCrosses()
	a.Size = sceneSize
	return a
}

func cubes() *artwork.Cubes {
	a := artwork.DefaultCubes()
	a.Size = sceneSize
	return a
}

func diamonds() *artwork.Diamonds {
	a := artwork.DefaultDiamonds()
	a.Size = sceneSizeLarge
	return a
}

func hexagons(labels bool) *artwork.Hexagons {
	a := artwork.DefaultHexagons()
	a.Size = sceneSizeLarge
	a.Labels = labels
	return a
}

func mosaic() *artwork.Mosaic {
	a := artwork.DefaultMosaic()
	a.Size = sceneSizeLarge
	return a
}

func rhombs() *artwork.Rhombs {
	a := artwork.DefaultRhombs()
	a.Size = artwork.Size{Width: 300, Height: 300}
	return a
}

func rings(shadows bool) *artwork.Rings {
	a := artwork.DefaultRings()
	a.Size = sceneSizeLarge
	a.Shadows = shadows
	return a
}

func stars() *artwork.Stars {
	a := artwork.DefaultStars()
	a.Size = sceneSizeLarge
	return a
}

func sticks() *artwork.Sticks {
	a := artwork.DefaultSticks()
	a.Size = sceneSize
	a.Radius = 110
	a.Sticks = 300
	return a
}

func stripes(antialias bool) *artwork.Stripes {
	a := artwork.DefaultStripes()
	a.Size = sceneSizeLarge
	a.Stripes = 4
	a.StripeWidth = 10
	a.Antialias = antialias
	return a
}

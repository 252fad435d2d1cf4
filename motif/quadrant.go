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

// Package motif draws the repeating shapes of the artworks: striped rings,
// double rings, hexagon outlines and sine crosses. It also resolves the
// overlap of neighbouring rings by choosing which parts of each ring are
// drawn on top.
package motif

import (
	"errors"
	"fmt"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrInvalidQuadrant is returned for quadrants outside 1 to 4.
	ErrInvalidQuadrant = errors.New("motif: invalid quadrant")

	// ErrInvalidRing is returned for ring parameters which do not
	// describe a ring.
	ErrInvalidRing = errors.New("motif: invalid ring parameters")
)

// Quadrant numbers the quadrants of a circle counter-clockwise, starting
// with 1 for the upper right.
type Quadrant int

// Valid reports whether q is one of the four quadrants.
func (q Quadrant) Valid() bool {
	return q >= 1 && q <= 4
}

// QuadrantArc returns the angles, in degrees, of the arc covering quadrant q,
// shortened by cross degrees at both ends.
func QuadrantArc(q Quadrant, cross float64) (start, end float64, err error) {
	if !q.Valid() {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidQuadrant, int(q))
	}
	return 90*float64(q-1) + cross, 90*float64(q) - cross, nil
}

// ArcDrawer draws the part of a motif between two angles.
type ArcDrawer interface {
	DrawArc(c *genart.Canvas, center vec.Vec2, start, end float64)
}

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

// Package lattice computes the positions of motif centres ("pins") which
// tile a canvas.
//
// All positions are Cartesian, with the origin at the centre of the canvas.
// Lattices deliberately extend beyond the canvas by at least one cell, so
// that motifs which are only partially visible at the margins are not
// missing.
package lattice

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrInvalidSpacing is returned for spacings which are not positive
	// finite numbers, or which are too small for the canvas.
	ErrInvalidSpacing = errors.New("lattice: invalid spacing")

	// ErrInvalidSize is returned for canvas sizes with a non-positive
	// dimension.
	ErrInvalidSize = errors.New("lattice: invalid canvas size")

	// ErrUnknownPattern is returned for undefined patterns.
	ErrUnknownPattern = errors.New("lattice: unknown pattern")
)

// Pattern selects the layout of a lattice.
type Pattern int

const (
	// Plain is a square grid with the given spacing.
	Plain Pattern = iota

	// Offset is a square grid where every other row is shifted by half the
	// spacing. Rows are half the spacing apart; the rows at odd distance
	// from the centre row contain the centre column.
	Offset

	// Diagonal keeps the cells of a square grid where the parities of
	// column and row, relative to the centre cell, agree.
	Diagonal

	// ZigZag places pins along vertical zig-zag chains with segments of
	// three times the spacing.
	ZigZag

	// Hexagonal places pins on concentric hexagons around the centre.
	Hexagonal
)

var patternNames = []string{"plain", "offset", "diagonal", "zigzag", "hexagonal"}

func (p Pattern) String() string {
	if p >= 0 && int(p) < len(patternNames) {
		return patternNames[p]
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

// ParsePattern returns the pattern with the given name.
func ParsePattern(s string) (Pattern, error) {
	for i, name := range patternNames {
		if strings.EqualFold(s, name) {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, s)
}

// Pin is the centre of a motif.
type Pin struct {
	// Pos is the Cartesian position of the pin.
	Pos vec.Vec2

	// Col and Row locate the pin in the grid. Row 0 is the top row.
	Col, Row int

	// SymCol and SymRow are the column and row relative to the centre of
	// the grid. SymRow grows upwards.
	SymCol, SymRow int
}

// ColParity returns 0 for pins in an even column relative to the centre,
// and 1 otherwise.
func (p *Pin) ColParity() int {
	return parity(p.SymCol)
}

// RowParity returns 0 for pins in an even row relative to the centre, and 1
// otherwise.
func (p *Pin) RowParity() int {
	return parity(p.SymRow)
}

// Quadrant returns the quadrant (1 to 4, counter-clockwise from the upper
// right) of the canvas which contains the pin. Pins on an axis count
// towards the quadrant with the larger coordinate.
func (p *Pin) Quadrant() int {
	switch {
	case p.Pos.X >= 0 && p.Pos.Y >= 0:
		return 1
	case p.Pos.Y >= 0:
		return 2
	case p.Pos.X < 0:
		return 3
	default:
		return 4
	}
}

func parity(i int) int {
	if i%2 == 0 {
		return 0
	}
	return 1
}

// Config describes a lattice.
type Config struct {
	// Size is the canvas size in pixels.
	Size image.Point

	// Spacing is the distance between neighbouring pins.
	Spacing float64

	Pattern Pattern

	// Tilt is the direction, in degrees, of the first vertex of the
	// hexagons of a Hexagonal lattice. It is ignored for other patterns.
	Tilt float64
}

// MaxCells limits the number of lattice cells which Generate will lay out.
const MaxCells = 1 << 22

// maxCells is an upper bound for the number of cells of any pattern. Rows
// of the Offset pattern are half a spacing apart, all other patterns are
// at most as dense.
func (c Config) maxCells() float64 {
	cols := float64(c.Size.X)/c.Spacing + 3
	rows := 2*float64(c.Size.Y)/c.Spacing + 3
	return cols * rows
}

// Validate checks that the configuration describes a lattice.
func (c Config) Validate() error {
	if c.Size.X <= 0 || c.Size.Y <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Size.X, c.Size.Y)
	}
	if !(c.Spacing > 0) || math.IsInf(c.Spacing, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSpacing, c.Spacing)
	}
	if n := c.maxCells(); n > MaxCells {
		return fmt.Errorf("%w: %g gives about %.0f cells on a %dx%d canvas",
			ErrInvalidSpacing, c.Spacing, n, c.Size.X, c.Size.Y)
	}
	if c.Pattern < 0 || int(c.Pattern) >= len(patternNames) {
		return fmt.Errorf("%w: %d", ErrUnknownPattern, int(c.Pattern))
	}
	return nil
}

// Generate computes the lattice.
func (c Config) Generate() (*Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Pattern {
	case Plain:
		return checkerboard(c, c.Spacing, -1), nil
	case Offset:
		return checkerboard(c, c.Spacing/2, 1), nil
	case Diagonal:
		return checkerboard(c, c.Spacing, 0), nil
	case ZigZag:
		return fromPoints(c, zigzag(c.Size, c.Spacing)), nil
	default: // Hexagonal
		return fromPoints(c, hexagonal(c.Size, c.Spacing, c.Tilt)), nil
	}
}

// Generate computes the lattice of the given pattern over a canvas of the
// given size.
func Generate(size image.Point, spacing float64, pattern Pattern) (*Grid, error) {
	return Config{Size: size, Spacing: spacing, Pattern: pattern}.Generate()
}

// IsOutside reports whether all points lie outside of a canvas of the given
// size, centred at the origin.
func IsOutside(points []vec.Vec2, size image.Point) bool {
	w, h := float64(size.X)/2, float64(size.Y)/2
	for _, p := range points {
		if p.X >= -w && p.X <= w && p.Y >= -h && p.Y <= h {
			return false
		}
	}
	return true
}

// SymmetricIndex converts the index i of a sequence of length n into an
// index relative to the middle element. For even n the middle is the left
// of the two central elements if preferLeft is set, and the right one
// otherwise.
func SymmetricIndex(i, n int, preferLeft bool) int {
	mid := n / 2
	if n%2 == 0 && preferLeft {
		mid--
	}
	return i - mid
}

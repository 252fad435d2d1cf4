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
	"fmt"

	"seehuhn.de/go/genart"
)

// Render draws the scene onto a new canvas.
func (s Scene) Render() (*genart.Canvas, error) {
	switch op := s.Op.(type) {
	case Art:
		return op.Artwork.Render(op.Seed)
	case Fill:
		c := genart.NewCanvas(s.Width, s.Height, Paper)
		c.Fill(op.Path, op.Rule, Ink)
		return c, nil
	case Rods:
		c := genart.NewCanvas(s.Width, s.Height, Paper)
		c.StrokeRods(op.Rods, op.Style, Ink)
		return c, nil
	case Arcs:
		c := genart.NewCanvas(s.Width, s.Height, Paper)
		for _, spec := range op.Specs {
			if spec.Color == nil {
				spec.Color = Ink
			}
			c.DrawArc(spec)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("scene %q: unsupported operation %T", s.Name, s.Op)
	}
}

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
	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/shade"
)

var arcColor = shade.HSV{H: 26, S: 39, V: 60}

var arcCases = []Scene{
	{
		Name:   "thin_full",
		Width:  64,
		Height: 64,
		Op:     Arcs{Specs: []genart.ArcSpec{{Radius: 25, Start: 0, End: 360}}},
	},
	{
		Name:   "thin_small",
		Width:  16,
		Height: 16,
		Op:     Arcs{Specs: []genart.ArcSpec{{Radius: 3, Start: 0, End: 360}}},
	},
	{
		Name:   "thick_quarter",
		Width:  64,
		Height: 64,
		Op:     Arcs{Specs: []genart.ArcSpec{{Radius: 22, Start: 0, End: 90, Width: 7}}},
	},
	{
		Name:   "wrap_around",
		Width:  64,
		Height: 64,
		Op:     Arcs{Specs: []genart.ArcSpec{{Radius: 22, Start: 300, End: 60, Width: 5}}},
	},
	{
		Name:   "antialiased",
		Width:  64,
		Height: 64,
		Op: Arcs{Specs: []genart.ArcSpec{
			{Radius: 22, Start: 0, End: 360, Width: 9, Color: arcColor, Antialias: true},
		}},
	},
	{
		Name:   "off_centre",
		Width:  64,
		Height: 64,
		Op: Arcs{Specs: []genart.ArcSpec{
			{Center: pt(20, -20), Radius: 30, Start: 90, End: 180, Width: 3},
			{Center: pt(-20, 20), Radius: 30, Start: 270, End: 360, Width: 3},
		}},
	},
	{
		Name:   "point",
		Width:  16,
		Height: 16,
		Op:     Arcs{Specs: []genart.ArcSpec{{Radius: 0, Start: 45, End: 45}}},
	},
}

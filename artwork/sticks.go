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

package artwork

import (
	"github.com/fogleman/gg"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/shade"
	"seehuhn.de/go/geom/vec"
)

// Sticks scatters thin radial sticks around the canvas centre. Every stick
// is built from short segments which get darker and redder towards the
// centre.
type Sticks struct {
	Size Size `toml:"size"`

	Sticks int     `toml:"sticks"`
	Radius float64 `toml:"radius"`

	// Spread is half the angular width of a stick, in degrees.
	Spread float64 `toml:"spread"`

	// Segment is the length of a segment.
	Segment int `toml:"segment"`

	Color      shade.HSL `toml:"color"`
	Background shade.HSV `toml:"background"`
}

// DefaultSticks returns the default parameters.
func DefaultSticks() *Sticks {
	return &Sticks{
		Size:    Size{1200, 900},
		Sticks:  1800,
		Radius:  450,
		Spread:  0.5,
		Segment: 5,
		Color:   shade.HSL{H: 24, S: 100, L: 36},
	}
}

// stickHueStep is the hue decrease from one segment to the next.
const stickHueStep = 4

func (a *Sticks) Name() string { return "sticks" }

func (a *Sticks) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if err := atLeast("sticks", a.Sticks, 0); err != nil {
		return err
	}
	if err := atLeast("segment", a.Segment, 1); err != nil {
		return err
	}
	if err := positive("radius", a.Radius); err != nil {
		return err
	}
	return positive("spread", a.Spread)
}

func (a *Sticks) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	rng := newRand(seed)
	c := genart.NewCanvas(a.Size.Width, a.Size.Height, a.Background)
	dc := newContext(c)

	radius := max(int(a.Radius), 1)
	segments := max(radius/a.Segment, 1)
	lightStep := float64(a.Segment) * a.Color.L / float64(segments)
	for range a.Sticks {
		angle := rng.Float64() * 360
		tip := 1 + rng.IntN(radius)
		a.drawStick(dc, c.Frame, angle, tip, lightStep)
	}
	return c, nil
}

// drawStick draws the segments of the stick with its outer end at
// distance tip from the centre.
func (a *Sticks) drawStick(dc *gg.Context, f genart.Frame, angle float64, tip int, lightStep float64) {
	col := a.Color
	for r := tip; r > 1; r -= a.Segment {
		col.H = max(0, col.H-stickHueStep)
		outer, inner := float64(r), float64(r-a.Segment)
		pts := []vec.Vec2{
			genart.PolarToCartesian(genart.Polar{Angle: angle + a.Spread, Radius: outer}, vec.Vec2{}),
			genart.PolarToCartesian(genart.Polar{Angle: angle - a.Spread, Radius: outer}, vec.Vec2{}),
			genart.PolarToCartesian(genart.Polar{Angle: angle - a.Spread, Radius: inner}, vec.Vec2{}),
			genart.PolarToCartesian(genart.Polar{Angle: angle + a.Spread, Radius: inner}, vec.Vec2{}),
		}
		segCol := col.Clamp()
		polygon(dc, f, pts, segCol, segCol, 1)
		col.L = max(0, col.L-lightStep)
	}
}

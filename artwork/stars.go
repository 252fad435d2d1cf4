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
	"fmt"
	"image"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/lattice"
	"seehuhn.de/go/genart/motif"
	"seehuhn.de/go/genart/shade"
	"seehuhn.de/go/geom/vec"
)

// Stars is a hexagonal lattice of glowing hexagonal pins, each surrounded
// by six stars of bright ring sectors.
type Stars struct {
	Size Size `toml:"size"`

	// Radius is the outer radius of the rims.
	Radius float64 `toml:"radius"`

	// Density is the distance between neighbouring pins, relative to
	// Radius.
	Density float64 `toml:"density"`

	// Tilt is the direction, in degrees, of the first neighbour of a pin.
	Tilt float64 `toml:"tilt"`

	RimWidth float64 `toml:"rim_width"`
	RimSweep float64 `toml:"rim_sweep"`

	// Contrast is the value of the darkest rim layer.
	Contrast float64 `toml:"contrast"`

	// PinContrast is the value difference between the pin centre and the
	// background.
	PinContrast float64 `toml:"pin_contrast"`

	Background shade.HSV `toml:"background"`
	Color      shade.HSV `toml:"color"`
	Flare      shade.HSV `toml:"flare"`
}

// DefaultStars returns the default parameters.
func DefaultStars() *Stars {
	return &Stars{
		Size:        Size{1200, 900},
		Radius:      80,
		Density:     1.4,
		Tilt:        70,
		RimWidth:    15,
		RimSweep:    43,
		Contrast:    30,
		PinContrast: 20,
		Background:  shade.HSV{H: 18, S: 55, V: 15},
		Color:       shade.HSV{H: 30, S: 37, V: 100},
		Flare:       shade.HSV{H: 26, S: 0, V: 90},
	}
}

const (
	starRimSteps    = 7
	starRimOffset   = 33
	starRimTop      = 2
	starShadowBand  = 3
	starFlareInset  = 10
	starPinLayers   = 10
	starPinShrink   = 4
	starPinFraction = 0.3
)

func (a *Stars) Name() string { return "stars" }

func (a *Stars) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if err := positive("radius", a.Radius); err != nil {
		return err
	}
	if err := positive("density", a.Density); err != nil {
		return err
	}
	if a.Radius*a.Density < 1 {
		return fmt.Errorf("%w: pin distance %g too small", ErrInvalidConfig, a.Radius*a.Density)
	}
	if !(a.RimWidth > 0 && a.RimWidth <= a.Radius) {
		return fmt.Errorf("%w: rim_width = %g", ErrInvalidConfig, a.RimWidth)
	}
	if !(a.RimSweep > 0 && a.RimSweep < 60) {
		return fmt.Errorf("%w: rim_sweep %g not in (0, 60)", ErrInvalidConfig, a.RimSweep)
	}
	if !(a.Contrast >= 0 && a.Contrast <= 100) {
		return fmt.Errorf("%w: contrast = %g", ErrInvalidConfig, a.Contrast)
	}
	return nil
}

// Pins returns the lattice of pin centres.
func (a *Stars) Pins() (*lattice.Grid, error) {
	return lattice.Config{
		Size:    image.Pt(a.Size.Width, a.Size.Height),
		Spacing: a.Density * a.Radius,
		Pattern: lattice.Hexagonal,
		Tilt:    a.Tilt,
	}.Generate()
}

func (a *Stars) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	g, err := a.Pins()
	if err != nil {
		return nil, err
	}
	genart.Logger().Debug("pins", "artwork", a.Name(), "count", g.Len())

	c := genart.NewCanvas(a.Size.Width, a.Size.Height, a.Background)
	rim := &motif.Rim{
		Radius:     a.Radius,
		Width:      a.RimWidth,
		Steps:      starRimSteps,
		TopWidth:   starRimTop,
		Contrast:   a.Contrast,
		Color:      a.Color,
		ShadowBand: starShadowBand,
		Flare:      a.Flare,
		FlareInset: starFlareInset,
	}
	for _, p := range g.Pins() {
		a.drawPin(c, p.Pos)
		a.drawStar(c, rim, p.Pos)
	}
	return c, nil
}

// drawPin draws nested hexagons which brighten towards the centre.
func (a *Stars) drawPin(c *genart.Canvas, center vec.Vec2) {
	r := a.Density * starPinFraction * a.Radius
	col := a.Background
	dv := a.PinContrast / (starPinLayers - 1)
	for range starPinLayers {
		c.FillPolygon(genart.RegularPolygon(center, r, 6, a.Tilt+30), col)
		r -= starPinShrink
		if r <= 0 {
			break
		}
		col = col.Lighten(dv)
	}
}

// drawStar draws six rims around each of the six neighbours of center.
// Rims are separated by gaps of 60° minus their sweep.
func (a *Stars) drawStar(c *genart.Canvas, rim *motif.Rim, center vec.Vec2) {
	first := a.Tilt - starRimOffset
	for i := range 6 {
		p := genart.PolarToCartesian(genart.Polar{Angle: a.Tilt + float64(60*i), Radius: a.Density * a.Radius}, center)
		for j := range 6 {
			start := first + float64(60*j)
			rim.Draw(c, p, start, start+a.RimSweep)
		}
	}
}

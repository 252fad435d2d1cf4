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
)

// Rings is a lattice of overlapping striped rings with a hub in the
// middle. Neighbouring rows are offset by half a ring. Every ring is first
// drawn in full, afterwards one quadrant per ring is drawn again so that
// the rings appear to interlock. Dotted shadows fill the gaps between the
// rings and follow the restored arcs.
type Rings struct {
	Size Size `toml:"size"`

	// Radius is the outer radius of a ring.
	Radius float64 `toml:"radius"`

	Stripes int `toml:"stripes"`

	// SpaceRatio is the width of the space between two stripes, relative
	// to the stripe width.
	SpaceRatio float64 `toml:"space_ratio"`

	// Cross is the angle, in degrees, between the line from the ring centre
	// to the nearest point of a neighbouring ring and the line from the
	// centre to the crossing point of both rings.
	Cross float64 `toml:"cross"`

	Background shade.HSV `toml:"background"`
	Ring       shade.HSV `toml:"ring"`
	Stripe     shade.HSV `toml:"stripe"`

	Shadows bool `toml:"shadows"`

	// ShadowMaxLen is the largest radius of a shadow zone, relative to
	// Radius.
	ShadowMaxLen float64 `toml:"shadow_max_len"`

	// Sampler is "uniform" or "biased".
	Sampler string `toml:"sampler"`
}

// DefaultRings returns the default parameters.
func DefaultRings() *Rings {
	return &Rings{
		Size:         Size{1400, 800},
		Radius:       80,
		Stripes:      4,
		SpaceRatio:   0.7,
		Cross:        7,
		Background:   shade.HSV{H: 36, S: 31, V: 80},
		Ring:         shade.HSV{H: 36, S: 31, V: 80},
		Stripe:       shade.HSV{H: 26, S: 39, V: 21},
		Shadows:      true,
		ShadowMaxLen: 0.06,
		Sampler:      "uniform",
	}
}

func (a *Rings) Name() string { return "rings" }

func (a *Rings) Validate() error {
	if err := a.Size.validate(); err != nil {
		return err
	}
	if err := positive("radius", a.Radius); err != nil {
		return err
	}
	if err := atLeast("stripes", a.Stripes, 2); err != nil {
		return err
	}
	if !(a.Cross > 1 && a.Cross < 45) {
		return fmt.Errorf("%w: cross angle %g not in (1, 45)", ErrInvalidConfig, a.Cross)
	}
	if !(a.ShadowMaxLen >= 0 && a.ShadowMaxLen <= 1) {
		return fmt.Errorf("%w: shadow_max_len = %g", ErrInvalidConfig, a.ShadowMaxLen)
	}
	if _, err := sampler(a.Sampler); err != nil {
		return err
	}
	if _, err := motif.NewRatioDistribution(a.Radius, a.Stripes, a.SpaceRatio); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// PinDistance returns the distance between the centres of two horizontally
// adjacent rings.
func (a *Rings) PinDistance() float64 {
	return motif.GapSide(a.Radius, a.Cross) + 2*a.Radius
}

// Pins returns the lattice of ring centres.
func (a *Rings) Pins() (*lattice.Grid, error) {
	return lattice.Generate(image.Pt(a.Size.Width, a.Size.Height), a.PinDistance(), lattice.Offset)
}

func (a *Rings) Render(seed uint64) (*genart.Canvas, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	dist, err := motif.NewRatioDistribution(a.Radius, a.Stripes, a.SpaceRatio)
	if err != nil {
		return nil, err
	}
	g, err := a.Pins()
	if err != nil {
		return nil, err
	}
	sample, _ := sampler(a.Sampler)
	rng := newRand(seed)
	log := genart.Logger().With("artwork", a.Name())
	log.Debug("pins", "count", g.Len(), "rows", g.NumRows(), "distance", a.PinDistance())

	c := genart.NewCanvas(a.Size.Width, a.Size.Height, a.Background)
	ring := &motif.StripedRing{Dist: dist, Stripe: a.Stripe, Space: a.Ring}

	restore := motif.RowRestore{Cross: a.Cross}
	if a.Shadows {
		gap := &motif.GapShadow{
			Radius:  a.Radius,
			GapSide: motif.GapSide(a.Radius, a.Cross),
			Color:   a.Stripe,
			Sampler: sample,
		}
		gap.Draw(c, rng, g.Pins())
		restore.Shadow = &motif.RingShadow{
			Radius:  a.Radius,
			MaxLen:  a.ShadowMaxLen,
			Cross:   a.Cross,
			Color:   a.Stripe,
			Sampler: sample,
		}
	}

	stamp(c, ring, g.Pins())
	log.Debug("restore pass", "rows", g.NumRows())
	restore.Render(c, rng, g, ring)
	return c, nil
}

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
	"crypto/sha256"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"seehuhn.de/go/genart"
)

func pixelHash(c *genart.Canvas) [32]byte {
	return sha256.Sum256(c.Image().Pix)
}

// small shrinks an artwork so that it renders quickly.
func small(a Artwork) Artwork {
	size := Size{240, 180}
	switch a := a.(type) {
	case *Cells:
		a.Size = size
		a.AverageCell = 100
		a.Tolerance = 10
		a.Cells = 12
	case *Crosses:
		a.Size = size
	case *Cubes:
		a.Size = size
	case *Diamonds:
		a.Size = size
		a.Radius = 40
	case *Hexagons:
		a.Size = size
	case *Mosaic:
		a.Size = size
	case *Rhombs:
		a.Size = size
	case *Rings:
		a.Size = size
		a.Radius = 40
	case *Stars:
		a.Size = size
		a.Radius = 40
		a.RimWidth = 8
	case *Sticks:
		a.Size = size
		a.Sticks = 60
		a.Radius = 100
	case *Stripes:
		a.Size = size
		a.Stripes = 3
		a.StripeWidth = 6
	}
	return a
}

func TestRegistry(t *testing.T) {
	names := Names()
	test.T(t, len(names), 11)
	test.That(t, slices.IsSorted(names))
	for _, name := range names {
		a, err := New(name)
		test.Error(t, err)
		test.String(t, a.Name(), name)
		test.Error(t, a.Validate(), name)
	}

	_, err := New("nonsense")
	test.That(t, errors.Is(err, ErrUnknownArtwork))
}

func TestRenderAll(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			a, err := New(name)
			test.Error(t, err)
			c, err := small(a).Render(1)
			test.Error(t, err)

			bg := c.RGBAAt(0, 0)
			varied := false
			for y := 0; y < c.Height && !varied; y++ {
				for x := 0; x < c.Width; x++ {
					if c.RGBAAt(x, y) != bg {
						varied = true
						break
					}
				}
			}
			test.That(t, varied, "blank picture")
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, name := range Names() {
		a, _ := New(name)
		a = small(a)
		c1, err := a.Render(7)
		test.Error(t, err)
		c2, err := a.Render(7)
		test.Error(t, err)
		test.T(t, pixelHash(c1), pixelHash(c2), name)
	}
}

func TestRingsSeed(t *testing.T) {
	a := DefaultRings()
	a.Size = Size{400, 300}

	c1, err := a.Render(1)
	test.Error(t, err)
	c2, err := a.Render(2)
	test.Error(t, err)
	test.That(t, pixelHash(c1) != pixelHash(c2), "seed has no effect")

	// the seed only moves the shadow stipple
	g1, err := a.Pins()
	test.Error(t, err)
	g2, err := a.Pins()
	test.Error(t, err)
	test.T(t, len(g1.Pins()), len(g2.Pins()))
	for i, p := range g1.Pins() {
		test.T(t, p.Pos, g2.Pins()[i].Pos)
	}

	a.Shadows = false
	c1, err = a.Render(1)
	test.Error(t, err)
	c2, err = a.Render(2)
	test.Error(t, err)
	test.T(t, pixelHash(c1), pixelHash(c2), "no randomness without shadows")
}

func TestLoad(t *testing.T) {
	conf := `
radius = 40
sampler = "biased"

[size]
width = 300
height = 200

[stripe]
h = 10
s = 20
v = 30
`
	a, err := Load("rings", strings.NewReader(conf))
	test.Error(t, err)
	r := a.(*Rings)
	test.T(t, r.Radius, 40.0)
	test.T(t, r.Size, Size{300, 200})
	test.T(t, r.Stripe.V, 30.0)
	test.String(t, r.Sampler, "biased")
	test.T(t, r.Stripes, DefaultRings().Stripes, "defaults are kept")
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name, conf string
		want       error
	}{
		{"rings", "colour = 3", ErrInvalidConfig},
		{"rings", "cross = 50", ErrInvalidConfig},
		{"rings", "sampler = \"gaussian\"", ErrInvalidConfig},
		{"rings", "radius = \"big\"", ErrInvalidConfig},
		{"stripes", "stripes = 1", ErrInvalidConfig},
		{"crosses", "side = 2000", ErrInvalidConfig},
		{"cubes", "short_diag = 200", ErrInvalidConfig},
		{"cells", "colors = []", ErrInvalidConfig},
		{"stars", "rim_sweep = 60", ErrInvalidConfig},
		{"hexagons", "[size]\nwidth = 0", ErrInvalidConfig},
		{"spirals", "", ErrUnknownArtwork},
	}
	for _, tc := range cases {
		_, err := Load(tc.name, strings.NewReader(tc.conf))
		test.That(t, errors.Is(err, tc.want), tc.name, tc.conf, err)
	}
}

func TestRenderValidates(t *testing.T) {
	a := DefaultDiamonds()
	a.Thickness = -1
	_, err := a.Render(0)
	test.That(t, errors.Is(err, ErrInvalidConfig))
}

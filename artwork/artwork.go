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

// Package artwork contains the configured pictures which can be rendered
// with this module.
//
// Every artwork is a plain struct holding its parameters, with toml tags
// for loading them from a configuration file. The values returned by [New]
// give the reference version of each picture. Randomness is derived from
// the seed passed to Render only, so that rendering the same configuration
// with the same seed twice gives identical images.
package artwork

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/shade"
)

var (
	// ErrInvalidConfig is returned for artwork parameters which cannot be
	// rendered.
	ErrInvalidConfig = errors.New("artwork: invalid configuration")

	// ErrUnknownArtwork is returned for names which are not registered.
	ErrUnknownArtwork = errors.New("artwork: unknown artwork")
)

// Artwork is a fully configured picture.
type Artwork interface {
	// Name returns the name under which the artwork is registered.
	Name() string

	// Validate checks the parameters. Errors wrap [ErrInvalidConfig].
	Validate() error

	// Render validates the parameters and draws the picture.
	Render(seed uint64) (*genart.Canvas, error)
}

// maxSide is the largest supported canvas width or height.
const maxSide = 1 << 14

// Size is the size of a canvas in pixels.
type Size struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

func (s Size) validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Width > maxSide || s.Height > maxSide {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, s.Width, s.Height)
	}
	return nil
}

func positive(name string, x float64) error {
	if !(x > 0) || x > maxSide {
		return fmt.Errorf("%w: %s = %g", ErrInvalidConfig, name, x)
	}
	return nil
}

func atLeast(name string, n, lo int) error {
	if n < lo {
		return fmt.Errorf("%w: %s = %d, need at least %d", ErrInvalidConfig, name, n, lo)
	}
	return nil
}

// newRand returns the random source for a render pass.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}

// samplers maps the names used in configuration files to stipple samplers.
var samplers = map[string]shade.Sampler{
	"uniform": shade.StippleUniform,
	"biased":  shade.StippleBiased,
}

func sampler(name string) (shade.Sampler, error) {
	s, ok := samplers[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sampler %q", ErrInvalidConfig, name)
	}
	return s, nil
}

var registry = map[string]func() Artwork{
	"cells":    func() Artwork { return DefaultCells() },
	"crosses":  func() Artwork { return DefaultCrosses() },
	"cubes":    func() Artwork { return DefaultCubes() },
	"diamonds": func() Artwork { return DefaultDiamonds() },
	"hexagons": func() Artwork { return DefaultHexagons() },
	"mosaic":   func() Artwork { return DefaultMosaic() },
	"rhombs":   func() Artwork { return DefaultRhombs() },
	"rings":    func() Artwork { return DefaultRings() },
	"stars":    func() Artwork { return DefaultStars() },
	"sticks":   func() Artwork { return DefaultSticks() },
	"stripes":  func() Artwork { return DefaultStripes() },
}

// Names returns the names of all registered artworks in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New returns the artwork with the given name, using the default
// parameters.
func New(name string) (Artwork, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArtwork, name)
	}
	return f(), nil
}

// Load reads TOML parameters for the named artwork from r. Keys which are
// not present keep their default values. Keys which the artwork does not
// know are an error.
func Load(name string, r io.Reader) (Artwork, error) {
	a, err := New(name)
	if err != nil {
		return nil, err
	}
	md, err := toml.NewDecoder(r).Decode(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

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

// Command genart renders one of the artworks to a PNG file.
//
//	genart rings --seed 7 --config rings.toml --output rings.png
//	genart list
package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tdewolff/argp"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/artwork"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen, color.Bold)
	cyan  = color.New(color.FgCyan)
)

type Render struct {
	Artwork string `index:"0" desc:"Artwork name, see 'genart list'"`
	Seed    uint64 `short:"s" default:"1" desc:"Random seed"`
	Config  string `short:"c" desc:"TOML file with artwork parameters"`
	Output  string `short:"o" desc:"Output PNG file (default: <artwork>.png)"`
	Labels  bool   `desc:"Write lattice indices next to the hexagons"`
	Verbose bool   `short:"v" desc:"Log drawing passes"`
}

type List struct{}

func main() {
	root := argp.NewCmd(&Render{}, "Geometric raster art")
	root.AddCmd(&List{}, "list", "List the available artworks")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Render) Run() error {
	if cmd.Artwork == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		genart.SetLogger(slog.New(h))
	}

	a, err := cmd.load()
	if err != nil {
		return err
	}
	if hex, ok := a.(*artwork.Hexagons); ok && cmd.Labels {
		hex.Labels = true
	}

	start := time.Now()
	c, err := a.Render(cmd.Seed)
	if err != nil {
		return err
	}

	out := cmd.Output
	if out == "" {
		out = a.Name() + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	err = png.Encode(f, c.Image())
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return err
	}

	green.Print("wrote ")
	bold.Print(out)
	cyan.Printf(" (%s, %dx%d, seed %d, %v)\n",
		a.Name(), c.Width, c.Height, cmd.Seed, time.Since(start).Round(time.Millisecond))
	return nil
}

func (cmd *Render) load() (artwork.Artwork, error) {
	if cmd.Config == "" {
		a, err := artwork.New(cmd.Artwork)
		if err != nil {
			return nil, err
		}
		return a, a.Validate()
	}

	f, err := os.Open(cmd.Config)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	a, err := artwork.Load(cmd.Artwork, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.Config, err)
	}
	return a, nil
}

func (cmd *List) Run() error {
	for _, name := range artwork.Names() {
		bold.Println(name)
	}
	return nil
}

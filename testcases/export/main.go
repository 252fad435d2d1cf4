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

// Command export renders all test scenes to PNG files and writes a JSON
// manifest describing them. Run from the module root directory.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/testcases"
	"seehuhn.de/go/geom/path"
)

const outDir = "testdata"

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			js, err := export(category, s)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			out.Scenes = append(out.Scenes, js)
		}
	}

	f, err := os.Create(filepath.Join(outDir, "scenes.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name      string        `json:"name"`
	File      string        `json:"file"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	SHA256    string        `json:"sha256"`
	Op        string        `json:"op"`
	Path      []jsonSegment `json:"path,omitempty"`
	FillRule  string        `json:"fill_rule,omitempty"`
	Rods      [][4]float64  `json:"rods,omitempty"`
	LineWidth float64       `json:"line_width,omitempty"`
	LineCap   string        `json:"line_cap,omitempty"`
	Artwork   string        `json:"artwork,omitempty"`
	Seed      uint64        `json:"seed,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func export(category string, s testcases.Scene) (jsonScene, error) {
	name := category + "_" + s.Name
	c, err := s.Render()
	if err != nil {
		return jsonScene{}, err
	}
	img := c.Image()

	file := name + ".png"
	f, err := os.Create(filepath.Join(outDir, file))
	if err != nil {
		return jsonScene{}, err
	}
	err = png.Encode(f, img)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return jsonScene{}, fmt.Errorf("%s: %w", name, err)
	}

	sum := sha256.Sum256(img.Pix)
	js := jsonScene{
		Name:   name,
		File:   file,
		Width:  c.Width,
		Height: c.Height,
		SHA256: hex.EncodeToString(sum[:]),
	}

	switch op := s.Op.(type) {
	case testcases.Fill:
		js.Op = "fill"
		js.Path = pathToJSON(op.Path)
		if op.Rule == genart.EvenOdd {
			js.FillRule = "evenodd"
		} else {
			js.FillRule = "nonzero"
		}
	case testcases.Rods:
		js.Op = "rods"
		for _, r := range op.Rods {
			js.Rods = append(js.Rods, [4]float64{r.A.X, r.A.Y, r.B.X, r.B.Y})
		}
		js.LineWidth = op.Style.Width
		js.LineCap = op.Style.Cap.String()
	case testcases.Arcs:
		js.Op = "arcs"
	case testcases.Art:
		js.Op = "artwork"
		js.Artwork = op.Artwork.Name()
		js.Seed = op.Seed
	}
	return js, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}

// seehuhn.de/go/pseudo3d - a software renderer for 2.5D scenes
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

// Package level reads and writes level documents.
//
// A level document lists walls, floors and sprites.  In JSON it looks
// like this:
//
//	{
//	  "walls": [{"x0": 0, "y0": 10, "x1": 10, "y1": 10, "z": 0, "h": 3, "tex": 1, "color": [255, 255, 255]}],
//	  "floors": [{"points": [{"x": 0, "y": 0}, {"x": 4, "y": 0}, {"x": 4, "y": 4}], "height": 0.5, "tex": 3, "color": [255, 255, 255]}],
//	  "sprites": [{"point": {"x": 3, "y": 5, "z": 0.5}, "tex": 2, "color": [255, 200, 200]}],
//	  "start": {"x": 5, "y": 0, "z": 0.8, "dir": 1.5708}
//	}
//
// YAML documents use the same keys.  Texture references are not checked
// here, since the texture table is not known; use
// [pseudo3d.Level.Validate] before rendering.
package level

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pseudo3d"
)

// Format selects the encoding of a level document.
type Format int

// These are the supported document formats.
const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf guesses the format from a file name extension.
func FormatOf(fname string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", fname, ErrUnknownFormat)
	}
}

type document struct {
	Walls   []wallDoc   `json:"walls" yaml:"walls"`
	Floors  []floorDoc  `json:"floors" yaml:"floors"`
	Sprites []spriteDoc `json:"sprites" yaml:"sprites"`
	Start   *startDoc   `json:"start,omitempty" yaml:"start,omitempty"`
}

type wallDoc struct {
	X0    float64 `json:"x0" yaml:"x0"`
	Y0    float64 `json:"y0" yaml:"y0"`
	X1    float64 `json:"x1" yaml:"x1"`
	Y1    float64 `json:"y1" yaml:"y1"`
	Z     float64 `json:"z" yaml:"z"`
	H     float64 `json:"h" yaml:"h"`
	Tex   int     `json:"tex" yaml:"tex"`
	Color []int   `json:"color" yaml:"color,flow"`
}

type floorDoc struct {
	Points []pointDoc `json:"points" yaml:"points,flow"`
	Height float64    `json:"height" yaml:"height"`
	Tex    int        `json:"tex" yaml:"tex"`
	Color  []int      `json:"color" yaml:"color,flow"`
}

type spriteDoc struct {
	Point pointDoc `json:"point" yaml:"point,flow"`
	Tex   int      `json:"tex" yaml:"tex"`
	Color []int    `json:"color" yaml:"color,flow"`
}

type pointDoc struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z,omitempty" yaml:"z,omitempty"`
}

type startDoc struct {
	X   float64 `json:"x" yaml:"x"`
	Y   float64 `json:"y" yaml:"y"`
	Z   float64 `json:"z" yaml:"z"`
	Dir float64 `json:"dir" yaml:"dir"`
}

// Decode reads a level document.
func Decode(r io.Reader, f Format) (*pseudo3d.Level, error) {
	var doc document
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode level: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode level: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode level: %w", ErrUnknownFormat)
	}
	return doc.level()
}

// Parse decodes a level document held in memory.
func Parse(data []byte, f Format) (*pseudo3d.Level, error) {
	return Decode(bytes.NewReader(data), f)
}

// LoadFile reads a level document from a file.  The format is chosen by the
// file name extension.
func LoadFile(fname string) (*pseudo3d.Level, error) {
	f, err := FormatOf(fname)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	pseudo3d.Logger().Debug("level loaded", "file", fname,
		"walls", len(lvl.Walls), "floors", len(lvl.Floors), "sprites", len(lvl.Sprites))
	return lvl, nil
}

// Encode writes a level document.
func Encode(w io.Writer, lvl *pseudo3d.Level, f Format) error {
	doc := fromLevel(lvl)
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("encode level: %w", ErrUnknownFormat)
	}
}

func (doc *document) level() (*pseudo3d.Level, error) {
	lvl := &pseudo3d.Level{
		Start: pseudo3d.DefaultCamera,
	}
	if s := doc.Start; s != nil {
		lvl.Start = pseudo3d.Camera{Pos: vec.Vec2{X: s.X, Y: s.Y}, Z: s.Z, Heading: s.Dir}
	}

	for i, w := range doc.Walls {
		tint, err := color(w.Color)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		lvl.Walls = append(lvl.Walls, pseudo3d.Wall{
			A:       vec.Vec2{X: w.X0, Y: w.Y0},
			B:       vec.Vec2{X: w.X1, Y: w.Y1},
			Z:       w.Z,
			Height:  w.H,
			Texture: w.Tex,
			Tint:    tint,
		})
	}

	for i, f := range doc.Floors {
		tint, err := color(f.Color)
		if err != nil {
			return nil, fmt.Errorf("floor %d: %w", i, err)
		}
		if len(f.Points) < 3 {
			pseudo3d.Logger().Warn("floor has fewer than three points", "floor", i, "points", len(f.Points))
		}
		pts := make([]vec.Vec2, len(f.Points))
		for j, p := range f.Points {
			pts[j] = vec.Vec2{X: p.X, Y: p.Y}
		}
		lvl.Floors = append(lvl.Floors, pseudo3d.Floor{
			Points:  pts,
			Z:       f.Height,
			Texture: f.Tex,
			Tint:    tint,
		})
	}

	for i, s := range doc.Sprites {
		tint, err := color(s.Color)
		if err != nil {
			return nil, fmt.Errorf("sprite %d: %w", i, err)
		}
		lvl.Sprites = append(lvl.Sprites, pseudo3d.Sprite{
			Pos:     vec.Vec2{X: s.Point.X, Y: s.Point.Y},
			Z:       s.Point.Z,
			Texture: s.Tex,
			Tint:    tint,
		})
	}

	return lvl, nil
}

func fromLevel(lvl *pseudo3d.Level) *document {
	doc := &document{
		Start: &startDoc{
			X:   lvl.Start.Pos.X,
			Y:   lvl.Start.Pos.Y,
			Z:   lvl.Start.Z,
			Dir: lvl.Start.Heading,
		},
	}
	for _, w := range lvl.Walls {
		doc.Walls = append(doc.Walls, wallDoc{
			X0: w.A.X, Y0: w.A.Y, X1: w.B.X, Y1: w.B.Y,
			Z: w.Z, H: w.Height, Tex: w.Texture, Color: colorDoc(w.Tint),
		})
	}
	for _, f := range lvl.Floors {
		fd := floorDoc{Height: f.Z, Tex: f.Texture, Color: colorDoc(f.Tint)}
		for _, p := range f.Points {
			fd.Points = append(fd.Points, pointDoc{X: p.X, Y: p.Y})
		}
		doc.Floors = append(doc.Floors, fd)
	}
	for _, s := range lvl.Sprites {
		doc.Sprites = append(doc.Sprites, spriteDoc{
			Point: pointDoc{X: s.Pos.X, Y: s.Pos.Y, Z: s.Z},
			Tex:   s.Texture,
			Color: colorDoc(s.Tint),
		})
	}
	return doc
}

// color converts a document color.  A missing color means white.
func color(c []int) (pseudo3d.RGB, error) {
	if c == nil {
		return pseudo3d.RGB{255, 255, 255}, nil
	}
	if len(c) != 3 {
		return pseudo3d.RGB{}, fmt.Errorf("color %v: %w", c, ErrBadColor)
	}
	var res pseudo3d.RGB
	for i, v := range c {
		if v < 0 || v > 255 {
			return pseudo3d.RGB{}, fmt.Errorf("color %v: %w", c, ErrBadColor)
		}
		res[i] = uint8(v)
	}
	return res, nil
}

func colorDoc(c pseudo3d.RGB) []int {
	return []int{int(c[0]), int(c[1]), int(c[2])}
}

var (
	// ErrUnknownFormat indicates an unsupported document format.
	ErrUnknownFormat = errors.New("unknown level format")

	// ErrBadColor indicates a color which is not a list of three values
	// in the range 0 to 255.
	ErrBadColor = errors.New("invalid color")

	// ErrNotFound is returned by stores for unknown level names.
	ErrNotFound = errors.New("level not found")
)

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

package pseudo3d

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Camera is the viewer's pose.  Pos is the position in the ground plane,
// Z is the eye elevation, and Heading is the viewing direction in radians,
// measured from the positive x-axis towards the positive y-axis.
type Camera struct {
	Pos     vec.Vec2
	Z       float64
	Heading float64
}

// DefaultCamera is used when a level does not specify a start pose.
var DefaultCamera = Camera{Z: 0.8}

// Wall is a vertical rectangle standing on the segment from A to B.
// The bottom edge is at elevation Z, the top edge at Z+Height.
type Wall struct {
	A, B    vec.Vec2
	Z       float64
	Height  float64
	Texture int
	Tint    RGB
}

// Floor is a horizontal polygon at elevation Z.  The points must form a
// simple polygon; it need not be convex.  A floor is only visible from
// above.
type Floor struct {
	Points  []vec.Vec2
	Z       float64
	Texture int
	Tint    RGB
}

// Outline returns the floor boundary as a closed path.
func (f *Floor) Outline() *path.Data {
	p := &path.Data{}
	for i, pt := range f.Points {
		if i == 0 {
			p = p.MoveTo(pt)
		} else {
			p = p.LineTo(pt)
		}
	}
	if len(f.Points) > 0 {
		p = p.Close()
	}
	return p
}

// Sprite is a point-like object, drawn as a square which always faces the
// camera.  Z is the elevation of the square's center.
type Sprite struct {
	Pos     vec.Vec2
	Z       float64
	Texture int
	Tint    RGB
}

// Level is the content of a scene.  The lists are drawn in order.
type Level struct {
	Walls   []Wall
	Floors  []Floor
	Sprites []Sprite

	// Start is the initial camera pose.
	Start Camera
}

// Validate checks that every texture reference is below numTextures and
// that all coordinates are finite.  The renderer does not check these
// conditions while drawing.
func (l *Level) Validate(numTextures int) error {
	var errs []error
	checkTex := func(kind string, i, tex int) {
		if tex < 0 || tex >= numTextures {
			errs = append(errs, fmt.Errorf("%s %d: texture %d: %w", kind, i, tex, ErrTextureIndex))
		}
	}
	checkNum := func(kind string, i int, xs ...float64) {
		for _, x := range xs {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				errs = append(errs, fmt.Errorf("%s %d: %w", kind, i, ErrNonFinite))
				return
			}
		}
	}

	for i, w := range l.Walls {
		checkTex("wall", i, w.Texture)
		checkNum("wall", i, w.A.X, w.A.Y, w.B.X, w.B.Y, w.Z, w.Height)
	}
	for i, f := range l.Floors {
		checkTex("floor", i, f.Texture)
		checkNum("floor", i, f.Z)
		for _, p := range f.Points {
			checkNum("floor", i, p.X, p.Y)
		}
	}
	for i, s := range l.Sprites {
		checkTex("sprite", i, s.Texture)
		checkNum("sprite", i, s.Pos.X, s.Pos.Y, s.Z)
	}

	err := errors.Join(errs...)
	if err == nil {
		Logger().Debug("level validated",
			"walls", len(l.Walls), "floors", len(l.Floors), "sprites", len(l.Sprites))
	}
	return err
}

// Bounds returns the smallest rectangle in the ground plane which contains
// all walls, floors, sprites and the start position.
func (l *Level) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: l.Start.Pos.X, LLy: l.Start.Pos.Y,
		URx: l.Start.Pos.X, URy: l.Start.Pos.Y,
	}
	extend := func(p vec.Vec2) {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	for _, w := range l.Walls {
		extend(w.A)
		extend(w.B)
	}
	for _, f := range l.Floors {
		for _, p := range f.Points {
			extend(p)
		}
	}
	for _, s := range l.Sprites {
		extend(s.Pos)
	}
	return b
}

var (
	// ErrTextureIndex indicates a reference to a texture which does not
	// exist.
	ErrTextureIndex = errors.New("texture index out of range")

	// ErrTextureSize indicates texture data of the wrong length.
	ErrTextureSize = errors.New("invalid texture size")

	// ErrNoTextures indicates an empty texture table.
	ErrNoTextures = errors.New("no textures")

	// ErrBadSize indicates a non-positive render resolution.
	ErrBadSize = errors.New("invalid render size")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("non-finite coordinate")
)

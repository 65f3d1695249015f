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

// Package testcases provides named scenes for tests, benchmarks and the
// image generators.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pseudo3d"
)

// Scene defines a single rendering test.
type Scene struct {
	Name   string          // lowercase a-z and _ only
	Level  *pseudo3d.Level // the content to render
	Camera pseudo3d.Camera // the viewpoint
	Width  int             // render width in pixels
	Height int             // render height in pixels
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// cam returns a camera at eye height 0.8.  The heading is given in degrees.
func cam(x, y, deg float64) pseudo3d.Camera {
	return pseudo3d.Camera{Pos: pt(x, y), Z: 0.8, Heading: deg * math.Pi / 180}
}

var white = pseudo3d.RGB{255, 255, 255}

// wall builds a wall of height h standing on the ground.
func wall(x0, y0, x1, y1, h float64, tint pseudo3d.RGB) pseudo3d.Wall {
	return pseudo3d.Wall{
		A:       pt(x0, y0),
		B:       pt(x1, y1),
		Height:  h,
		Texture: pseudo3d.TexWall,
		Tint:    tint,
	}
}

// room builds the four walls of an axis-aligned rectangle.
func room(x0, y0, x1, y1, h float64, tint pseudo3d.RGB) []pseudo3d.Wall {
	return []pseudo3d.Wall{
		wall(x0, y0, x1, y0, h, tint),
		wall(x1, y0, x1, y1, h, tint),
		wall(x1, y1, x0, y1, h, tint),
		wall(x0, y1, x0, y0, h, tint),
	}
}

// box builds an axis-aligned rectangular floor at elevation z.
func box(x0, y0, x1, y1, z float64) pseudo3d.Floor {
	return pseudo3d.Floor{
		Points:  []vec.Vec2{pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1)},
		Z:       z,
		Texture: pseudo3d.TexFloor,
		Tint:    white,
	}
}

// regular builds a regular n-gon floor at elevation z.
func regular(cx, cy, radius float64, n int, z float64) pseudo3d.Floor {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = pt(cx+radius*cos, cy+radius*sin)
	}
	return pseudo3d.Floor{Points: pts, Z: z, Texture: pseudo3d.TexFloor, Tint: white}
}

// sprite builds a sprite using the builtin sprite texture.
func sprite(x, y, z float64, tint pseudo3d.RGB) pseudo3d.Sprite {
	return pseudo3d.Sprite{Pos: pt(x, y), Z: z, Texture: pseudo3d.TexSprite, Tint: tint}
}

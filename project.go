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
	"math"

	"seehuhn.de/go/geom/vec"
)

// projPoint is a segment end point after projection.
type projPoint struct {
	sx int     // screen column
	vx float64 // lateral view-space coordinate
	vz float64 // view-space depth
	tx float64 // distance along the segment, used as texture coordinate
}

// screenPoint is a vertex of a projected floor outline.
type screenPoint struct {
	x, y int
}

// toView transforms a point in the ground plane into view space.
// vz is the distance in viewing direction, vx the lateral offset.
func toView(p vec.Vec2, cam *Camera) (vx, vz float64) {
	sin, cos := math.Sincos(-cam.Heading)
	dx := p.X - cam.Pos.X
	dy := p.Y - cam.Pos.Y
	vx = cos*-dy - sin*dx
	vz = sin*-dy + cos*dx
	return vx, vz
}

// toWorld maps a view-space point back into the ground plane.
// sin and cos are the sine and cosine of the camera heading.
func toWorld(vx, vz, sin, cos float64, cam *Camera) vec.Vec2 {
	return vec.Vec2{
		X: cos*vz - sin*-vx + cam.Pos.X,
		Y: sin*vz + cos*-vx + cam.Pos.Y,
	}
}

// projectX returns the screen column of a view-space point.
func (r *Renderer) projectX(vx, vz float64) int {
	w := float64(r.opt.Width)
	return toScreen((r.opt.NearClip*vx/vz + r.viewW/2) * w / r.viewW)
}

// projectY returns the screen row of a point which lies dz below the eye,
// at view-space depth vz.
func (r *Renderer) projectY(dz, vz float64) int {
	h := float64(r.opt.Height)
	return toScreen((r.opt.NearClip*dz/vz + r.viewH/2) * h / r.viewH)
}

// viewPlaneX returns the lateral offset of screen column x on the view plane.
func (r *Renderer) viewPlaneX(x int) float64 {
	return float64(x)/float64(r.opt.Width)*r.viewW - r.viewW/2
}

// viewPlaneY returns the vertical offset of screen row y on the view plane.
func (r *Renderer) viewPlaneY(y int) float64 {
	return float64(y)/float64(r.opt.Height)*r.viewH - r.viewH/2
}

// projectSegment clips the segment a-b against the near plane and projects
// the remaining part.  The results are ordered by texture coordinate, so
// p1 belongs to a and p2 to b; they are not necessarily ordered from left
// to right.  If the whole segment is behind the near plane, ok is false.
func (r *Renderer) projectSegment(a, b vec.Vec2, cam *Camera) (p1, p2 projPoint, ok bool) {
	length := Distance2D(a, b)
	near := r.opt.NearClip

	vx1, vz1 := toView(a, cam)
	vx2, vz2 := toView(b, cam)
	tx1, tx2 := 0.0, length

	// make the first point the nearer one
	if vz1 > vz2 {
		vx1, vx2 = vx2, vx1
		vz1, vz2 = vz2, vz1
		tx1, tx2 = tx2, tx1
	}

	if vz1 < near && vz2 < near {
		return p1, p2, false
	}

	if vz1 < near {
		vx1 = vx2 - (vx2-vx1)*(vz2-near)/(vz2-vz1)
		vz1 = near

		rest := Distance2D(vec.Vec2{X: vx1, Y: vz1}, vec.Vec2{X: vx2, Y: vz2})
		if tx1 > 0 {
			tx1 = rest
		} else {
			tx1 = length - rest
		}
	}

	p1 = projPoint{sx: r.projectX(vx1, vz1), vx: vx1, vz: vz1, tx: tx1}
	p2 = projPoint{sx: r.projectX(vx2, vz2), vx: vx2, vz: vz2, tx: tx2}
	if tx1 > tx2 {
		p1, p2 = p2, p1
	}
	return p1, p2, true
}

// toScreen converts a screen coordinate to an integer, truncating towards
// zero.  Out-of-range values saturate and NaN maps to 0.
func toScreen(f float64) int {
	switch {
	case f >= screenLimit:
		return screenLimit
	case f <= -screenLimit:
		return -screenLimit
	case !math.IsNaN(f):
		return int(f)
	default:
		return 0
	}
}

// screenLimit bounds projected coordinates, so that products of two
// coordinates cannot overflow.
const screenLimit = 1 << 30

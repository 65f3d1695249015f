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

import "math"

// DrawFloor draws a horizontal polygon with depth testing.  Floors at or
// above the eye elevation are not drawn.
//
// Edges which lie entirely behind the near plane are dropped and the
// remaining vertices are joined directly, so the outline can be wrong for
// floors which extend behind the camera.
func (r *Renderer) DrawFloor(f *Floor, cam *Camera) {
	if f.Z >= cam.Z {
		return
	}

	dz := cam.Z - f.Z
	n := len(f.Points)
	r.poly = r.poly[:0]
	for i := range n {
		p1, _, ok := r.projectSegment(f.Points[i], f.Points[(i+1)%n], cam)
		if !ok {
			continue
		}
		r.poly = append(r.poly, screenPoint{x: p1.sx, y: r.projectY(dz, p1.vz)})
	}
	if len(r.poly) < 3 {
		return
	}

	fb := r.fb
	tex := &r.textures[f.Texture]
	sin, cos := math.Sincos(cam.Heading)
	near := r.opt.NearClip

	r.fillPolygon(r.poly, func(x, yMin, yMax int) {
		fsx := r.viewPlaneX(x)
		for y := yMin; y <= yMax; y++ {
			fsy := math.Abs(r.viewPlaneY(y))
			vz := near * dz / fsy
			depth := float32(vz)
			if fb.DepthAt(x, y) <= depth {
				continue
			}
			vx := fsx * vz / near

			p := toWorld(vx, vz, sin, cos, cam)
			tx := wrapTexel(p.X * texelsPerUnit)
			ty := wrapTexel(p.Y * texelsPerUnit)

			fb.SetPixelDepth(x, y, depth, r.shade(tex.Texel(tx, ty), f.Tint, vz))
		}
	})
}

// fillPolygon scan-converts a simple polygon column by column.  For every
// screen column inside the polygon, emit is called once with the covered
// rows yMin..yMax (inclusive, clipped to the screen).
//
// Starting at the leftmost vertex, one cursor walks the outline forwards
// (the top chain) and one walks it backwards (the bottom chain).  Each
// cursor stops at the first vertex which is not left of the current column,
// and the row of the chain is interpolated between this vertex and the one
// before.  Columns where either chain has an edge of zero width are
// skipped.
func (r *Renderer) fillPolygon(pts []screenPoint, emit func(x, yMin, yMax int)) {
	n := len(pts)
	if n < 3 {
		return
	}

	left, right := 0, 0
	for i, p := range pts {
		if p.x < pts[left].x {
			left = i
		}
		if p.x >= pts[right].x {
			right = i
		}
	}

	topPrev, top := left, (left+1)%n
	botPrev, bot := left, (left+n-1)%n

	xMin := max(pts[left].x, 0)
	xMax := min(pts[right].x+1, r.opt.Width)
	for x := xMin; x < xMax; x++ {
		for steps := 0; pts[top].x < x && steps < n; steps++ {
			topPrev, top = top, (top+1)%n
		}
		for steps := 0; pts[bot].x < x && steps < n; steps++ {
			botPrev, bot = bot, (bot+n-1)%n
		}

		yt, ok := interpolateRow(pts[topPrev], pts[top], x)
		if !ok {
			continue
		}
		yb, ok := interpolateRow(pts[botPrev], pts[bot], x)
		if !ok {
			continue
		}

		yMin := max(min(yt, yb), 0)
		yMax := min(max(yt, yb), r.opt.Height-1)
		if yMin > yMax {
			continue
		}
		emit(x, yMin, yMax)
	}
}

// interpolateRow returns the row of the edge a-b at column x.
// Edges of zero width have no well-defined row.
func interpolateRow(a, b screenPoint, x int) (int, bool) {
	dx := b.x - a.x
	if dx == 0 {
		return 0, false
	}
	return a.y + (x-a.x)*(b.y-a.y)/dx, true
}

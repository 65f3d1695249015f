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

// DrawWall draws a wall with depth testing.  Walls which are entirely
// behind the near plane or outside the screen produce no output.
func (r *Renderer) DrawWall(w *Wall, cam *Camera) {
	p1, p2, ok := r.projectSegment(w.A, w.B, cam)
	if !ok {
		return
	}
	if p1.sx >= p2.sx {
		p1, p2 = p2, p1
	}

	fb := r.fb
	tex := &r.textures[w.Texture]

	xMin := max(p1.sx, 0)
	xMax := min(p2.sx, r.opt.Width-1)

	bottom := cam.Z - w.Z
	top := cam.Z - w.Z - w.Height

	for x := xMin; x < xMax; x++ {
		// 1/z and u/z are linear in screen space
		kx := float64(x-p1.sx) / float64(p2.sx-p1.sx)
		vz := (p1.vz * p2.vz) / ((1-kx)*p2.vz + kx*p1.vz)
		u := (p1.tx/p1.vz + (p2.tx/p2.vz-p1.tx/p1.vz)*kx) * vz
		depth := float32(vz)

		sy1 := r.projectY(bottom, vz)
		sy2 := r.projectY(top, vz)
		if sy1 > sy2 {
			sy1, sy2 = sy2, sy1
		}

		tx := wrapTexel(u * texelsPerUnit)

		yMin := max(sy1, 0)
		yMax := min(sy2, r.opt.Height-1)
		for y := yMin; y < yMax; y++ {
			if fb.DepthAt(x, y) <= depth {
				continue
			}
			ky := float64(y-sy1) / float64(sy2-sy1)
			ty := wrapTexel(ky * w.Height * texelsPerUnit)

			fb.SetPixelDepth(x, y, depth, r.shade(tex.Texel(tx, ty), w.Tint, vz))
		}
	}
}

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

// DrawBackground paints the sky into the upper half of the screen and the
// infinite ground plane (elevation 0) into the lower half.  Every visible
// pixel is written; sky pixels keep their previous depth.
//
// This must be the first primitive of each frame, since the color plane is
// never cleared.
func (r *Renderer) DrawBackground(cam *Camera) {
	fb := r.fb
	tex := &r.textures[r.opt.GroundTexture]
	sin, cos := math.Sincos(cam.Heading)
	near := r.opt.NearClip

	w, h := r.opt.Width, r.opt.Height
	for sx := range w {
		fsx := r.viewPlaneX(sx)
		for sy := range h {
			if sy < h/2 {
				fb.SetPixel(sx, sy, r.opt.Ambient)
				continue
			}

			fsy := math.Abs(r.viewPlaneY(sy))
			vz := near * cam.Z / fsy
			vx := fsx * vz / near

			p := toWorld(vx, vz, sin, cos, cam)
			tx := wrapTexel(p.X * texelsPerUnit)
			ty := wrapTexel(p.Y * texelsPerUnit)

			c := r.shade(tex.Texel(tx, ty), r.opt.GroundTint, math.Abs(vz))
			fb.SetPixelDepth(sx, sy, float32(vz), c)
		}
	}
}

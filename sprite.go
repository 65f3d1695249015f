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

// DrawSprite draws a sprite as a camera-facing square whose side length is
// inversely proportional to its depth.  Black texels are transparent.
func (r *Renderer) DrawSprite(s *Sprite, cam *Camera) {
	vx, vz := toView(s.Pos, cam)
	if vz <= r.opt.NearClip {
		return
	}

	fb := r.fb
	tex := &r.textures[s.Texture]
	depth := float32(vz)

	sx := r.projectX(vx, vz)
	sy := r.projectY(cam.Z-s.Z, vz)
	side := toScreen(r.opt.NearClip * float64(r.opt.Width) / r.viewW / vz)
	half := side / 2

	x1 := clamp(sx-half, 0, r.opt.Width-1)
	x2 := clamp(sx+half, 0, r.opt.Width-1)
	y1 := clamp(sy-half, 0, r.opt.Height-1)
	y2 := clamp(sy+half, 0, r.opt.Height-1)

	fog := FogFactor(math.Abs(vz))
	for x := x1; x < x2; x++ {
		kx := float64(x-sx+half) / float64(side)
		tx := wrapTexel(kx * TextureSize)
		for y := y1; y < y2; y++ {
			if fb.DepthAt(x, y) <= depth {
				continue
			}

			ky := float64(y-sy+half) / float64(side)
			texel := tex.Texel(tx, wrapTexel(ky*TextureSize))
			if texel == (RGB{}) {
				continue
			}

			c := FogMix(TintMultiply(texel, s.Tint), r.opt.Ambient, fog)
			fb.SetPixelDepth(x, y, depth, c)
		}
	}
}

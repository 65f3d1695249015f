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

// stage is one step of the per-frame pipeline.
type stage func(r *Renderer, lvl *Level, cam *Camera)

// frameStages lists the steps of a frame in the order in which they run.
// The background must come right after the depth reset: it is the only
// stage which writes every pixel.
var frameStages = [...]stage{
	func(r *Renderer, _ *Level, _ *Camera) {
		r.fb.ResetDepth()
	},
	func(r *Renderer, _ *Level, cam *Camera) {
		r.DrawBackground(cam)
	},
	func(r *Renderer, lvl *Level, cam *Camera) {
		for i := range lvl.Walls {
			r.DrawWall(&lvl.Walls[i], cam)
		}
	},
	func(r *Renderer, lvl *Level, cam *Camera) {
		for i := range lvl.Sprites {
			r.DrawSprite(&lvl.Sprites[i], cam)
		}
	},
	func(r *Renderer, lvl *Level, cam *Camera) {
		for i := range lvl.Floors {
			r.DrawFloor(&lvl.Floors[i], cam)
		}
	},
}

// DrawFrame renders a complete frame of the level as seen from cam.
//
// The level must have been validated against the renderer's texture table;
// an invalid texture index causes a panic.
func (r *Renderer) DrawFrame(lvl *Level, cam Camera) {
	for _, s := range frameStages {
		s(r, lvl, &cam)
	}
}

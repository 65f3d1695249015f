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

// Package game ties a level, a camera and a renderer together.
package game

import (
	"fmt"
	"image"
	"time"

	"seehuhn.de/go/pseudo3d"
	"seehuhn.de/go/pseudo3d/motion"
)

// Session is the state of one player walking through one level.
// A Session is not safe for concurrent use.
type Session struct {
	// Camera is the current camera pose.
	Camera pseudo3d.Camera

	// Elapsed is the total time passed to Update.
	Elapsed time.Duration

	// Frames counts the calls to Draw.
	Frames uint64

	level    *pseudo3d.Level
	renderer *pseudo3d.Renderer
}

// New validates the level against the renderer's texture table and starts
// a session at the level's start pose.
func New(lvl *pseudo3d.Level, r *pseudo3d.Renderer) (*Session, error) {
	if err := lvl.Validate(r.NumTextures()); err != nil {
		return nil, fmt.Errorf("invalid level: %w", err)
	}
	return &Session{
		Camera:   lvl.Start,
		level:    lvl,
		renderer: r,
	}, nil
}

// Update moves the camera according to the intents.
func (s *Session) Update(in motion.Intents, dt time.Duration) {
	s.Camera = motion.Integrate(s.Camera, in, dt)
	s.Elapsed += dt
}

// Draw renders the current view.
func (s *Session) Draw() {
	s.renderer.DrawFrame(s.level, s.Camera)
	s.Frames++
}

// Frame returns the padded RGB color plane of the last frame.  The slice
// is overwritten by the next call to Draw.
func (s *Session) Frame() []byte {
	return s.renderer.Frame()
}

// Image returns a copy of the visible part of the last frame.
func (s *Session) Image() *image.RGBA {
	return s.renderer.Image()
}

// Renderer returns the renderer used by the session.
func (s *Session) Renderer() *pseudo3d.Renderer {
	return s.renderer
}

// Level returns the level of the session.
func (s *Session) Level() *pseudo3d.Level {
	return s.level
}

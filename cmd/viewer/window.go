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

package main

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/pseudo3d/game"
	"seehuhn.de/go/pseudo3d/motion"
)

var keyIntents = []struct {
	key ebiten.Key
	in  motion.Intents
}{
	{ebiten.KeyW, motion.Forward},
	{ebiten.KeyArrowUp, motion.Forward},
	{ebiten.KeyS, motion.Back},
	{ebiten.KeyArrowDown, motion.Back},
	{ebiten.KeyA, motion.StrafeLeft},
	{ebiten.KeyD, motion.StrafeRight},
	{ebiten.KeyArrowLeft, motion.TurnLeft},
	{ebiten.KeyQ, motion.TurnLeft},
	{ebiten.KeyArrowRight, motion.TurnRight},
	{ebiten.KeyE, motion.TurnRight},
	{ebiten.KeySpace, motion.Action},
}

// runWindow opens a window which displays the session and forwards
// keyboard input.  It blocks until the window is closed or Escape is
// pressed.
func runWindow(s *game.Session, cfg *config) error {
	r := s.Renderer()
	v := &viewer{
		session: s,
		dt:      time.Second / time.Duration(cfg.tps),
		pix:     make([]byte, 4*r.Width()*r.Height()),
	}

	ebiten.SetWindowTitle("pseudo3d")
	ebiten.SetWindowSize(r.Width()*cfg.scale, r.Height()*cfg.scale)
	ebiten.SetTPS(cfg.tps)
	return ebiten.RunGame(v)
}

type viewer struct {
	session *game.Session
	dt      time.Duration

	img   *ebiten.Image
	pix   []byte
	dirty bool

	lastReport time.Duration
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var in motion.Intents
	for _, k := range keyIntents {
		if ebiten.IsKeyPressed(k.key) {
			in |= k.in
		}
	}
	s := v.session
	s.Update(in, v.dt)
	s.Draw()
	v.dirty = true

	if s.Elapsed-v.lastReport >= 5*time.Second {
		v.lastReport = s.Elapsed
		slog.Debug("status",
			"fps", ebiten.ActualFPS(),
			"tps", ebiten.ActualTPS(),
			"frames", s.Frames,
			"x", s.Camera.Pos.X, "y", s.Camera.Pos.Y, "heading", s.Camera.Heading)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	r := v.session.Renderer()
	w, h := r.Width(), r.Height()
	if v.img == nil {
		v.img = ebiten.NewImage(w, h)
	}

	if v.dirty {
		fb := r.Framebuffer()
		for y := range h {
			src := fb.Pix[y*fb.Width*3:]
			dst := v.pix[y*w*4:]
			for x := range w {
				dst[4*x+0] = src[3*x+0]
				dst[4*x+1] = src[3*x+1]
				dst[4*x+2] = src[3*x+2]
				dst[4*x+3] = 0xFF
			}
		}
		v.img.WritePixels(v.pix)
		v.dirty = false
	}
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	r := v.session.Renderer()
	return r.Width(), r.Height()
}

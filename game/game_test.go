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

package game

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pseudo3d"
	"seehuhn.de/go/pseudo3d/motion"
)

func newRenderer(t *testing.T) *pseudo3d.Renderer {
	t.Helper()
	r, err := pseudo3d.NewRenderer(pseudo3d.DefaultOptions(64, 48), pseudo3d.BuiltinTextures())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestSession(t *testing.T) {
	lvl := &pseudo3d.Level{
		Walls: []pseudo3d.Wall{{
			A: vec.Vec2{X: 0, Y: 10}, B: vec.Vec2{X: 10, Y: 10},
			Height: 3, Texture: pseudo3d.TexWall, Tint: pseudo3d.RGB{255, 255, 255},
		}},
		Start: pseudo3d.Camera{Pos: vec.Vec2{X: 5, Y: 0}, Z: 0.8, Heading: math.Pi / 2},
	}
	s, err := New(lvl, newRenderer(t))
	if err != nil {
		t.Fatal(err)
	}

	s.Update(motion.Forward, time.Second)
	if math.Abs(s.Camera.Pos.Y-2) > 1e-9 || s.Elapsed != time.Second {
		t.Errorf("unexpected state after update: %+v, %v", s.Camera, s.Elapsed)
	}

	s.Draw()
	if s.Frames != 1 {
		t.Errorf("Frames = %d", s.Frames)
	}
	if got, want := len(s.Frame()), 64*64*3; got != want {
		t.Errorf("frame has %d bytes, want %d", got, want)
	}
	if b := s.Image().Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("image bounds %v", b)
	}
}

func TestSessionInvalidLevel(t *testing.T) {
	lvl := &pseudo3d.Level{
		Sprites: []pseudo3d.Sprite{{Texture: 17}},
		Start:   pseudo3d.DefaultCamera,
	}
	_, err := New(lvl, newRenderer(t))
	if !errors.Is(err, pseudo3d.ErrTextureIndex) {
		t.Errorf("got error %v, want ErrTextureIndex", err)
	}
}

func TestRunHeadless(t *testing.T) {
	lvl := &pseudo3d.Level{Start: pseudo3d.Camera{Z: 0.8}}
	s, err := New(lvl, newRenderer(t))
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	cfg := HeadlessConfig{
		Hz:      10,
		Ticks:   20,
		Intents: motion.Forward,
		OnTick:  func(*Session) { calls++ },
	}
	if err := RunHeadless(context.Background(), s, cfg); err != nil {
		t.Fatal(err)
	}

	if s.Frames != 20 || calls != 20 {
		t.Errorf("drew %d frames with %d callbacks, want 20", s.Frames, calls)
	}
	if s.Elapsed != 2*time.Second {
		t.Errorf("elapsed %v, want 2s", s.Elapsed)
	}
	if math.Abs(s.Camera.Pos.X-2*motion.Speed) > 1e-9 {
		t.Errorf("camera at %v", s.Camera.Pos)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	s, err := New(&pseudo3d.Level{Start: pseudo3d.DefaultCamera}, newRenderer(t))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cfg := HeadlessConfig{
		OnTick: func(s *Session) {
			if s.Frames == 3 {
				cancel()
			}
		},
	}
	err = RunHeadless(ctx, s, cfg)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if s.Frames != 3 {
		t.Errorf("drew %d frames after cancelling", s.Frames)
	}
}

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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestValidate(t *testing.T) {
	good := &Level{
		Walls:   []Wall{{A: vec.Vec2{X: 0, Y: 1}, B: vec.Vec2{X: 1, Y: 1}, Height: 1, Texture: 1}},
		Floors:  []Floor{*square(0, 0, 1, 1, 0.2)},
		Sprites: []Sprite{{Pos: vec.Vec2{X: 2, Y: 2}, Texture: 3}},
	}
	if err := good.Validate(4); err != nil {
		t.Errorf("valid level: %v", err)
	}

	err := good.Validate(3)
	if !errors.Is(err, ErrTextureIndex) {
		t.Errorf("sprite texture 3 of 3: got %v", err)
	}

	bad := &Level{
		Walls:  []Wall{{Texture: -1}},
		Floors: []Floor{{Points: []vec.Vec2{{X: math.NaN()}}}},
	}
	err = bad.Validate(4)
	if !errors.Is(err, ErrTextureIndex) || !errors.Is(err, ErrNonFinite) {
		t.Errorf("both problems should be reported: %v", err)
	}
}

func TestBounds(t *testing.T) {
	l := &Level{
		Walls:   []Wall{{A: vec.Vec2{X: -3, Y: 1}, B: vec.Vec2{X: 2, Y: 1}}},
		Floors:  []Floor{*square(0, -4, 1, 0, 0.2)},
		Sprites: []Sprite{{Pos: vec.Vec2{X: 5, Y: 6}}},
		Start:   Camera{Pos: vec.Vec2{X: 1, Y: 1}},
	}
	want := rect.Rect{LLx: -3, LLy: -4, URx: 5, URy: 6}
	if got := l.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestOutline(t *testing.T) {
	f := square(0, 0, 2, 1, 0)

	var cmds []path.Command
	var pts []vec.Vec2
	for cmd, p := range f.Outline().Iter() {
		cmds = append(cmds, cmd)
		if cmd != path.CmdClose {
			pts = append(pts, p...)
		}
	}

	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(cmds) != len(want) {
		t.Fatalf("got commands %v", cmds)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d is %v, want %v", i, cmds[i], want[i])
		}
	}
	if len(pts) != len(f.Points) {
		t.Fatalf("got %d points", len(pts))
	}
	for i, p := range pts {
		if p != f.Points[i] {
			t.Errorf("point %d is %v, want %v", i, p, f.Points[i])
		}
	}

	if n := len((&Floor{}).Outline().Cmds); n != 0 {
		t.Errorf("empty floor has %d commands", n)
	}
}

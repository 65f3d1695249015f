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

package motion

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pseudo3d"
)

func TestIntegrate(t *testing.T) {
	start := pseudo3d.Camera{Pos: vec.Vec2{X: 1, Y: 2}, Z: 0.8, Heading: math.Pi / 2}

	cases := []struct {
		name    string
		in      Intents
		pos     vec.Vec2
		heading float64
	}{
		{"none", 0, vec.Vec2{X: 1, Y: 2}, math.Pi / 2},
		{"forward", Forward, vec.Vec2{X: 1, Y: 3}, math.Pi / 2},
		{"back", Back, vec.Vec2{X: 1, Y: 1}, math.Pi / 2},
		{"left", StrafeLeft, vec.Vec2{X: 0, Y: 2}, math.Pi / 2},
		{"right", StrafeRight, vec.Vec2{X: 2, Y: 2}, math.Pi / 2},
		{"forward_back", Forward | Back, vec.Vec2{X: 1, Y: 2}, math.Pi / 2},
		{"turn_left", TurnLeft, vec.Vec2{X: 1, Y: 2}, math.Pi/2 + 1},
		{"turn_right", TurnRight, vec.Vec2{X: 1, Y: 2}, math.Pi/2 - 1},
	}

	const eps = 1e-9
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Integrate(start, tc.in, 500*time.Millisecond)
			if math.Abs(got.Pos.X-tc.pos.X) > eps || math.Abs(got.Pos.Y-tc.pos.Y) > eps {
				t.Errorf("position: got %v, want %v", got.Pos, tc.pos)
			}
			if math.Abs(got.Heading-tc.heading) > eps {
				t.Errorf("heading: got %g, want %g", got.Heading, tc.heading)
			}
			if got.Z != start.Z {
				t.Errorf("elevation changed: %g", got.Z)
			}
		})
	}
}

func TestIntents(t *testing.T) {
	var in Intents
	in = in.Set(Forward, true).Set(TurnLeft, true)
	if !in.Has(Forward) || !in.Has(TurnLeft) || in.Has(Back) {
		t.Errorf("unexpected intent set %s", in)
	}
	in = in.Set(Forward, false)
	if in.Has(Forward) {
		t.Error("forward still set")
	}
	if s := (Forward | Action).String(); s != "forward|action" {
		t.Errorf("String() = %q", s)
	}
	if s := Intents(0).String(); s != "none" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseIntents(t *testing.T) {
	cases := []struct {
		in   string
		want Intents
	}{
		{"", 0},
		{"none", 0},
		{"forward", Forward},
		{"forward|turn-left", Forward | TurnLeft},
		{"strafe-right, action", StrafeRight | Action},
		{(Back | TurnRight).String(), Back | TurnRight},
	}
	for _, tc := range cases {
		got, err := ParseIntents(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
		} else if got != tc.want {
			t.Errorf("%q: got %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseIntents("forward|jump"); !errors.Is(err, ErrUnknownIntent) {
		t.Errorf("unknown name: got %v", err)
	}
}

func TestIntentsJSON(t *testing.T) {
	type message struct {
		Intents Intents `json:"intents"`
	}

	data, err := json.Marshal(message{Intents: Forward | StrafeLeft})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"intents":"forward|strafe-left"}` {
		t.Errorf("got %s", data)
	}

	var msg message
	if err := json.Unmarshal([]byte(`{"intents":"turn-right|back"}`), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Intents != Back|TurnRight {
		t.Errorf("got %s", msg.Intents)
	}
}

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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestFogFactor(t *testing.T) {
	if k := FogFactor(0); k != 1 {
		t.Errorf("FogFactor(0) = %g, want 1", k)
	}
	if k := FogFactor(5); k != 0.5 {
		t.Errorf("FogFactor(5) = %g, want 0.5", k)
	}

	prev := FogFactor(0)
	for depth := 0.25; depth < 200; depth += 0.25 {
		k := FogFactor(depth)
		if k < 0 || k > 1 {
			t.Fatalf("FogFactor(%g) = %g out of range", depth, k)
		}
		if k > prev {
			t.Fatalf("FogFactor increases at depth %g: %g > %g", depth, k, prev)
		}
		prev = k
	}
	if k := FogFactor(math.Inf(1)); k != 0 {
		t.Errorf("FogFactor(+Inf) = %g, want 0", k)
	}
}

func TestTintMultiply(t *testing.T) {
	cases := []struct {
		base, tint, want RGB
	}{
		{RGB{255, 255, 255}, RGB{255, 255, 255}, RGB{254, 254, 254}},
		{RGB{0, 10, 20}, RGB{255, 255, 255}, RGB{0, 9, 19}},
		{RGB{0, 0, 0}, RGB{17, 99, 255}, RGB{0, 0, 0}},
		{RGB{128, 100, 255}, RGB{255, 100, 0}, RGB{127, 39, 0}},
		{RGB{1, 255, 16}, RGB{255, 1, 16}, RGB{0, 0, 1}},
	}
	for _, tc := range cases {
		if got := TintMultiply(tc.base, tc.tint); got != tc.want {
			t.Errorf("TintMultiply(%v, %v) = %v, want %v", tc.base, tc.tint, got, tc.want)
		}
	}
}

func TestFogMix(t *testing.T) {
	c := RGB{200, 13, 7}
	fog := RGB{0, 40, 255}

	if got := FogMix(c, fog, 1); got != c {
		t.Errorf("k=1: got %v, want %v", got, c)
	}
	if got := FogMix(c, fog, 0); got != fog {
		t.Errorf("k=0: got %v, want %v", got, fog)
	}
	if got, want := FogMix(RGB{0, 255, 10}, RGB{255, 0, 10}, 0.5), (RGB{128, 128, 10}); got != want {
		t.Errorf("k=0.5: got %v, want %v", got, want)
	}
}

func TestDistance2D(t *testing.T) {
	p := vec.Vec2{X: 1, Y: 2}
	q := vec.Vec2{X: 4, Y: 6}
	if d := Distance2D(p, q); d != 5 {
		t.Errorf("Distance2D = %g, want 5", d)
	}
	if d := Distance2D(q, q); d != 0 {
		t.Errorf("Distance2D = %g, want 0", d)
	}
}

func TestClamp(t *testing.T) {
	if v := clamp(-3, 0, 10); v != 0 {
		t.Errorf("clamp(-3) = %d", v)
	}
	if v := clamp(13, 0, 10); v != 10 {
		t.Errorf("clamp(13) = %d", v)
	}
	if v := clamp(0.5, 0.0, 1.0); v != 0.5 {
		t.Errorf("clamp(0.5) = %g", v)
	}
}

func TestWrapTexel(t *testing.T) {
	cases := []struct {
		v    float64
		want int
	}{
		{0, 0}, {0.99, 0}, {15.5, 15}, {16, 0}, {33, 1},
		{-0.5, 15}, {-16, 0}, {-17, 15},
		{math.NaN(), 0}, {math.Inf(1), 0}, {math.Inf(-1), 0},
	}
	for _, tc := range cases {
		if got := wrapTexel(tc.v); got != tc.want {
			t.Errorf("wrapTexel(%g) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

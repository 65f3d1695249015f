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

	"seehuhn.de/go/geom/vec"
)

// RGB is a color with 8 bits per channel.
type RGB [3]uint8

// TintMultiply multiplies base by tint, channel by channel.
//
// The product is computed in fixed point as ((b<<8)*(t<<8))>>24, which
// equals floor(b*t/256).  This truncates: a white tint maps 255 to 254.
func TintMultiply(base, tint RGB) RGB {
	var res RGB
	for i := range res {
		res[i] = uint8((uint32(base[i]) << 8) * (uint32(tint[i]) << 8) >> 24)
	}
	return res
}

// FogMix interpolates between c (weight k) and fog (weight 1-k) and
// rounds to the nearest integer.  k must be in [0, 1].
func FogMix(c, fog RGB, k float64) RGB {
	var res RGB
	for i := range res {
		res[i] = uint8(math.Round(float64(c[i])*k + float64(fog[i])*(1-k)))
	}
	return res
}

// FogFactor returns the weight of the primitive color at the given
// view-space depth.  The value is 1 at depth 0, exactly 1/2 at depth 5,
// and decreases towards 0 for large depths.
func FogFactor(depth float64) float64 {
	return clamp(1/(math.Pow(depth*fogScale, fogExponent)+1), 0, 1)
}

// Distance2D returns the Euclidean distance between p and q.
func Distance2D(p, q vec.Vec2) float64 {
	return q.Sub(p).Length()
}

func clamp[T int | float64](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// shade applies the tint and the distance fog to a texel.
func (r *Renderer) shade(texel, tint RGB, depth float64) RGB {
	return FogMix(TintMultiply(texel, tint), r.opt.Ambient, FogFactor(depth))
}

const (
	fogScale    = 0.2
	fogExponent = 1.2
)

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

package pseudo3d_test

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/pseudo3d"
	"seehuhn.de/go/pseudo3d/testcases"
)

// BenchmarkDrawFrame renders every scene at its native resolution.
func BenchmarkDrawFrame(b *testing.B) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			b.Run(category+"_"+sc.Name, func(b *testing.B) {
				r := newRenderer(b, sc.Width, sc.Height)

				b.ReportAllocs()
				for b.Loop() {
					r.DrawFrame(sc.Level, sc.Camera)
				}
			})
		}
	}
}

// BenchmarkResolution renders the courtyard scene at increasing sizes.
func BenchmarkResolution(b *testing.B) {
	sc := testcases.All["mixed"][0]
	for _, size := range [][2]int{{160, 120}, {320, 240}, {640, 480}} {
		b.Run(sizeName(size), func(b *testing.B) {
			r, err := pseudo3d.NewRenderer(pseudo3d.DefaultOptions(size[0], size[1]), pseudo3d.BuiltinTextures())
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			for b.Loop() {
				r.DrawFrame(sc.Level, sc.Camera)
			}
		})
	}
}

func sizeName(size [2]int) string {
	return fmt.Sprintf("%dx%d", size[0], size[1])
}

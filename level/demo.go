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

package level

import (
	_ "embed"

	"seehuhn.de/go/pseudo3d"
)

//go:embed demo.yaml
var demoYAML []byte

// Demo returns a small level which only uses the builtin textures.
func Demo() *pseudo3d.Level {
	lvl, err := Parse(demoYAML, YAML)
	if err != nil {
		panic(err)
	}
	return lvl
}

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

// Command genpdf draws a top-down plan of every test scene as a PDF file.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pseudo3d/testcases"
)

const (
	planDir  = "testdata/plans"
	pageSize = 400.0 // points
	margin   = 1.0   // world units
)

func main() {
	if err := os.MkdirAll(planDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(planDir, name+".pdf")
			if err := generatePDF(sc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// generatePDF draws a top-down plan of the scene: floors in light gray,
// walls as thick lines, sprites as small squares and the camera as a
// triangle pointing in the viewing direction.
func generatePDF(sc testcases.Scene, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: pageSize,
		URy: pageSize,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, pageSize, pageSize)
	page.Fill()

	// Map the scene bounds, plus a margin, onto the page.  PDF and the
	// ground plane both have the y-axis pointing up.
	lvl := *sc.Level
	lvl.Start = sc.Camera
	b := lvl.Bounds()
	b.LLx -= margin
	b.LLy -= margin
	b.URx += margin
	b.URy += margin
	s := pageSize / max(b.URx-b.LLx, b.URy-b.LLy)
	page.Transform(matrix.Matrix{s, 0, 0, s, -b.LLx * s, -b.LLy * s})

	for _, f := range lvl.Floors {
		page.SetFillColor(color.DeviceGray(0.85 - 0.3*min(f.Z, 1)))
		for cmd, pts := range f.Outline().Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.15)
	page.SetLineCap(graphics.LineCapRound)
	for _, w := range lvl.Walls {
		page.MoveTo(w.A.X, w.A.Y)
		page.LineTo(w.B.X, w.B.Y)
	}
	if len(lvl.Walls) > 0 {
		page.Stroke()
	}

	const half = 0.15
	page.SetFillColor(color.DeviceGray(0.4))
	for _, sp := range lvl.Sprites {
		page.Rectangle(sp.Pos.X-half, sp.Pos.Y-half, 2*half, 2*half)
	}
	if len(lvl.Sprites) > 0 {
		page.Fill()
	}

	cam := sc.Camera
	sin, cos := math.Sincos(cam.Heading)
	page.SetFillColor(color.DeviceGray(0))
	page.MoveTo(cam.Pos.X+0.6*cos, cam.Pos.Y+0.6*sin)
	page.LineTo(cam.Pos.X-0.25*sin, cam.Pos.Y+0.25*cos)
	page.LineTo(cam.Pos.X+0.25*sin, cam.Pos.Y-0.25*cos)
	page.ClosePath()
	page.Fill()

	return page.Close()
}

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

import "math"

// Framebuffer holds a color plane with 3 bytes per pixel and a depth plane
// with one value per pixel.  Both planes are sized to the padded
// (power-of-two) resolution.
//
// Coordinates are not checked; writing outside the framebuffer panics.
type Framebuffer struct {
	// Pix is the color plane in row-major RGB order.
	Pix []byte

	// Depth is the depth plane in row-major order.
	Depth []float32

	// Width and Height give the padded size in pixels.
	Width, Height int
}

// NewFramebuffer allocates a zeroed framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Pix:    make([]byte, width*height*3),
		Depth:  make([]float32, width*height),
		Width:  width,
		Height: height,
	}
}

// SetPixel writes a color without touching the depth plane.
func (fb *Framebuffer) SetPixel(x, y int, c RGB) {
	i := (x + y*fb.Width) * 3
	fb.Pix[i+0] = c[0]
	fb.Pix[i+1] = c[1]
	fb.Pix[i+2] = c[2]
}

// SetPixelDepth writes a color and records its depth.
func (fb *Framebuffer) SetPixelDepth(x, y int, depth float32, c RGB) {
	fb.SetPixel(x, y, c)
	fb.Depth[x+y*fb.Width] = depth
}

// DepthAt returns the depth stored for a pixel.
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	return fb.Depth[x+y*fb.Width]
}

// At returns the color stored for a pixel.
func (fb *Framebuffer) At(x, y int) RGB {
	i := (x + y*fb.Width) * 3
	return RGB{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]}
}

// ResetDepth marks every pixel as infinitely far away.
// The color plane is left as it is.
func (fb *Framebuffer) ResetDepth() {
	for i := range fb.Depth {
		fb.Depth[i] = math.MaxFloat32
	}
}

// nextPow2 returns the smallest power of two which is >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

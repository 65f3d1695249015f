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
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder for LoadTextures
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// TextureSize is the width and height of every texture, in texels.
const TextureSize = 16

// Texture is a square RGB image with TextureSize*TextureSize texels in
// row-major order.
type Texture [TextureSize * TextureSize * 3]byte

// texelsPerUnit gives the number of texels per world unit.  Textures
// repeat every TextureSize/texelsPerUnit world units.
const texelsPerUnit = 32

// NewTexture copies raw RGB data into a Texture.
func NewTexture(pix []byte) (Texture, error) {
	var t Texture
	if len(pix) != len(t) {
		return t, fmt.Errorf("%d bytes: %w", len(pix), ErrTextureSize)
	}
	copy(t[:], pix)
	return t, nil
}

// TextureFromImage converts an image into a texture.  Images of other sizes
// are resampled using nearest-neighbour interpolation.  Alpha is dropped.
func TextureFromImage(img image.Image) Texture {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	if b.Dx() != TextureSize || b.Dy() != TextureSize {
		Logger().Debug("resampling texture", "width", b.Dx(), "height", b.Dy())
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

	var t Texture
	for i := range TextureSize * TextureSize {
		copy(t[i*3:i*3+3], dst.Pix[i*4:i*4+3])
	}
	return t
}

// LoadTextures reads image files, in order, into a texture table.
func LoadTextures(paths ...string) ([]Texture, error) {
	res := make([]Texture, 0, len(paths))
	for _, p := range paths {
		img, err := decodeImageFile(p)
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", p, err)
		}
		res = append(res, TextureFromImage(img))
	}
	return res, nil
}

func decodeImageFile(fname string) (img image.Image, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	img, _, err = image.Decode(f)
	return img, err
}

// Texel returns the texel at column tx and row ty.
func (t *Texture) Texel(tx, ty int) RGB {
	i := (ty*TextureSize + tx) * 3
	return RGB{t[i], t[i+1], t[i+2]}
}

func (t *Texture) set(tx, ty int, c RGB) {
	i := (ty*TextureSize + tx) * 3
	t[i], t[i+1], t[i+2] = c[0], c[1], c[2]
}

// wrapTexel maps a texture coordinate, given in texels, to a texel index
// in [0, TextureSize).  Coordinates wrap around; NaN and infinities map
// to 0.
func wrapTexel(v float64) int {
	m := math.Mod(math.Floor(v), TextureSize)
	if m < 0 {
		m += TextureSize
	}
	if !(m >= 0 && m < TextureSize) {
		return 0
	}
	return int(m)
}

// Slots used by BuiltinTextures.
const (
	TexGround = iota
	TexWall
	TexSprite
	TexFloor
)

// BuiltinTextures returns a small procedural texture table, so that scenes
// can be rendered without image files.  Black texels in the sprite texture
// are transparent.
func BuiltinTextures() []Texture {
	res := make([]Texture, 4)

	ground := &res[TexGround]
	for y := range TextureSize {
		for x := range TextureSize {
			c := RGB{150, 150, 150}
			if (x/4+y/4)%2 == 0 {
				c = RGB{210, 210, 210}
			}
			ground.set(x, y, c)
		}
	}

	wall := &res[TexWall]
	for y := range TextureSize {
		offset := 0
		if (y/4)%2 == 1 {
			offset = 4
		}
		for x := range TextureSize {
			c := RGB{200, 90, 60}
			if y%4 == 3 || (x+offset)%8 == 7 {
				c = RGB{120, 120, 110}
			}
			wall.set(x, y, c)
		}
	}

	sprite := &res[TexSprite]
	for y := range TextureSize {
		for x := range TextureSize {
			dx := float64(x) - 7.5
			dy := float64(y) - 7.5
			d := math.Sqrt(dx*dx + dy*dy)
			if d > 7 {
				continue // black is transparent
			}
			v := uint8(255 - 12*int(d))
			sprite.set(x, y, RGB{v, v, v})
		}
	}

	floor := &res[TexFloor]
	for y := range TextureSize {
		for x := range TextureSize {
			c := RGB{90, 110, 200}
			if (x+y)%8 < 2 {
				c = RGB{230, 230, 240}
			}
			floor.set(x, y, c)
		}
	}

	return res
}

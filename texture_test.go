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
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewTexture(t *testing.T) {
	_, err := NewTexture(make([]byte, 10))
	if !errors.Is(err, ErrTextureSize) {
		t.Errorf("short data: got %v", err)
	}

	pix := make([]byte, TextureSize*TextureSize*3)
	pix[(3*TextureSize+2)*3+1] = 77
	tex, err := NewTexture(pix)
	if err != nil {
		t.Fatal(err)
	}
	if c := tex.Texel(2, 3); c != (RGB{0, 77, 0}) {
		t.Errorf("Texel(2, 3) = %v", c)
	}
}

// split returns an image which is red on the left and blue on the right.
func split(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			c := color.RGBA{255, 0, 0, 255}
			if x >= size/2 {
				c = color.RGBA{0, 0, 255, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestTextureFromImage(t *testing.T) {
	for _, size := range []int{TextureSize, 4 * TextureSize} {
		tex := TextureFromImage(split(size))
		for y := range TextureSize {
			for x := range TextureSize {
				want := RGB{255, 0, 0}
				if x >= TextureSize/2 {
					want = RGB{0, 0, 255}
				}
				if c := tex.Texel(x, y); c != want {
					t.Fatalf("size %d: texel (%d, %d) is %v, want %v", size, x, y, c, want)
				}
			}
		}
	}
}

func TestLoadTextures(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "split.png")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, split(32)); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	tex, err := LoadTextures(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(tex) != 1 {
		t.Fatalf("got %d textures", len(tex))
	}
	if c := tex[0].Texel(15, 0); c != (RGB{0, 0, 255}) {
		t.Errorf("Texel(15, 0) = %v", c)
	}

	if _, err := LoadTextures(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file not reported")
	}
}

func TestBuiltinTextures(t *testing.T) {
	tex := BuiltinTextures()
	if len(tex) != 4 {
		t.Fatalf("got %d textures", len(tex))
	}

	// corners of the sprite are transparent, the center is not
	sprite := &tex[TexSprite]
	if c := sprite.Texel(0, 0); c != (RGB{}) {
		t.Errorf("sprite corner is %v", c)
	}
	if c := sprite.Texel(8, 8); c == (RGB{}) {
		t.Error("sprite center is transparent")
	}

	// the other textures have no transparent texels
	for _, i := range []int{TexGround, TexWall, TexFloor} {
		for y := range TextureSize {
			for x := range TextureSize {
				if tex[i].Texel(x, y) == (RGB{}) {
					t.Fatalf("texture %d: texel (%d, %d) is black", i, x, y)
				}
			}
		}
	}
}

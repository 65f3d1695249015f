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
)

// Options configures a Renderer.  Use [DefaultOptions] as a starting
// point; zero values of ViewWidth and NearClip are replaced by defaults.
type Options struct {
	// Width and Height give the render resolution in pixels.  The
	// framebuffer is padded to the next powers of two.
	Width, Height int

	// ViewWidth is the width of the view plane at the near-clip distance,
	// in world units.  The height follows from the aspect ratio.
	ViewWidth float64

	// NearClip is the smallest view-space depth which is drawn.
	NearClip float64

	// Ambient is the sky color and the fog color.
	Ambient RGB

	// GroundTexture is the texture index used for the ground plane.
	GroundTexture int

	// GroundTint is multiplied into the ground texture.
	GroundTint RGB
}

// DefaultOptions returns the reference configuration for the given
// resolution.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:         width,
		Height:        height,
		ViewWidth:     defaultViewWidth,
		NearClip:      defaultNearClip,
		Ambient:       RGB{0, 40, 0},
		GroundTexture: TexGround,
		GroundTint:    RGB{100, 255, 100},
	}
}

func (o *Options) normalize() {
	if o.ViewWidth <= 0 {
		o.ViewWidth = defaultViewWidth
	}
	if o.NearClip <= 0 {
		o.NearClip = defaultNearClip
	}
}

// Renderer draws walls, sprites, floors and the ground plane into a
// framebuffer which it owns.  The framebuffer is reused from frame to
// frame.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	opt      Options
	textures []Texture
	fb       *Framebuffer

	// view plane size at the near-clip distance
	viewW, viewH float64

	// scratch space for projected floor outlines
	poly []screenPoint
}

// NewRenderer allocates a renderer and its framebuffer.  The texture table
// is copied.  Every texture index used while drawing must be valid for
// this table; see [Level.Validate].
func NewRenderer(opt Options, textures []Texture) (*Renderer, error) {
	opt.normalize()
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", opt.Width, opt.Height, ErrBadSize)
	}
	if len(textures) == 0 {
		return nil, ErrNoTextures
	}
	if opt.GroundTexture < 0 || opt.GroundTexture >= len(textures) {
		return nil, fmt.Errorf("ground texture %d: %w", opt.GroundTexture, ErrTextureIndex)
	}

	r := &Renderer{
		opt:      opt,
		textures: append([]Texture(nil), textures...),
		fb:       NewFramebuffer(nextPow2(opt.Width), nextPow2(opt.Height)),
		viewW:    opt.ViewWidth,
		viewH:    float64(opt.Height) / float64(opt.Width) * opt.ViewWidth,
	}
	Logger().Debug("renderer created",
		"width", opt.Width, "height", opt.Height,
		"paddedWidth", r.fb.Width, "paddedHeight", r.fb.Height,
		"textures", len(textures))
	return r, nil
}

// Width returns the render width in pixels.
func (r *Renderer) Width() int { return r.opt.Width }

// Height returns the render height in pixels.
func (r *Renderer) Height() int { return r.opt.Height }

// Options returns the normalized configuration.
func (r *Renderer) Options() Options { return r.opt }

// NumTextures returns the size of the texture table.
func (r *Renderer) NumTextures() int { return len(r.textures) }

// Framebuffer returns the framebuffer.  Its color plane holds the last
// completed frame until the next frame is started.
func (r *Renderer) Framebuffer() *Framebuffer { return r.fb }

// Frame returns the color plane of the padded framebuffer.
func (r *Renderer) Frame() []byte { return r.fb.Pix }

// Image copies the visible part of the framebuffer into a new image.
func (r *Renderer) Image() *image.RGBA {
	w, h := r.opt.Width, r.opt.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		src := r.fb.Pix[y*r.fb.Width*3:]
		dst := img.Pix[y*img.Stride:]
		for x := range w {
			dst[4*x+0] = src[3*x+0]
			dst[4*x+1] = src[3*x+1]
			dst[4*x+2] = src[3*x+2]
			dst[4*x+3] = 0xFF
		}
	}
	return img
}

// Default values for renderer options.
const (
	defaultViewWidth = 0.2
	defaultNearClip  = 0.1
)

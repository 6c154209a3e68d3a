// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"golang.org/x/image/draw"
)

// ErrNilImage is returned when an image texture has no pixels.
var ErrNilImage = errors.New("overlay: nil image")

// ImageTexture is a CPU-side RGBA texture handle.
type ImageTexture struct {
	rgba *image.RGBA
}

// NewImageTexture scales src into a width×height RGBA texture. A
// non-positive dimension keeps the source size.
func NewImageTexture(src image.Image, width, height int) *ImageTexture {
	sb := src.Bounds()
	if width <= 0 {
		width = sb.Dx()
	}
	if height <= 0 {
		height = sb.Dy()
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if sb.Dx() == width && sb.Dy() == height {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	}
	return &ImageTexture{rgba: dst}
}

// Width returns the texture width in pixels.
func (t *ImageTexture) Width() int { return t.rgba.Rect.Dx() }

// Height returns the texture height in pixels.
func (t *ImageTexture) Height() int { return t.rgba.Rect.Dy() }

// RGBA returns the texture pixels.
func (t *ImageTexture) RGBA() *image.RGBA { return t.rgba }

var _ gpucontext.Texture = (*ImageTexture)(nil)

// Upload creates a device texture holding t's pixels.
func Upload(tc gpucontext.TextureCreator, t *ImageTexture) (gpucontext.Texture, error) {
	if t == nil || t.rgba == nil {
		return nil, ErrNilImage
	}
	tex, err := tc.NewTextureFromRGBA(t.Width(), t.Height(), t.rgba.Pix)
	if err != nil {
		return nil, fmt.Errorf("overlay: upload %dx%d texture: %w", t.Width(), t.Height(), err)
	}
	return tex, nil
}

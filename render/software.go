// Package render provides a software implementation of the drag
// engine's render contract: an in-memory framebuffer target and an
// image-backed texture. It stands in for a GPU pipeline in tests and
// headless setups; blits go through the x/image scalers.
package render

import (
	"image"
	"image/color"

	"github.com/diamondburned/wayfire/drag"
	"github.com/diamondburned/wayfire/geom"
	"github.com/diamondburned/wayfire/internal/fimg"
	"golang.org/x/image/draw"
)

// A Texture wraps an image as a drag.Texture.
type Texture struct {
	img image.Image
}

func NewTexture(img image.Image) *Texture {
	return &Texture{img: img}
}

func (t *Texture) Size() geom.Point[int] {
	return geom.FromImagePoint(t.img.Bounds().Size())
}

func (t *Texture) Image() image.Image {
	return t.img
}

// A Framebuffer is a CPU render target covering one rectangle of the
// layout space.
type Framebuffer struct {
	img      *fimg.NABGR
	geometry geom.Rect[int]
}

// NewFramebuffer returns a framebuffer covering the given layout-space
// rectangle. Pixels start fully transparent.
func NewFramebuffer(geometry geom.Rect[int]) *Framebuffer {
	return &Framebuffer{
		img:      fimg.NewNABGR(image.Rect(0, 0, geometry.Dx(), geometry.Dy())),
		geometry: geometry,
	}
}

func (fb *Framebuffer) Geometry() geom.Rect[int] {
	return fb.geometry
}

// Image exposes the framebuffer contents.
func (fb *Framebuffer) Image() image.Image {
	return fb.img
}

// Pixel returns the color at the given layout-space position.
func (fb *Framebuffer) Pixel(p geom.Point[int]) color.Color {
	local := p.Sub(fb.geometry.Min)
	return fb.img.At(local.X, local.Y)
}

// RenderTexture scales t into dst and writes the part of it inside
// both clip and the framebuffer. It implements drag.RenderTarget.
func (fb *Framebuffer) RenderTexture(t drag.Texture, dst geom.Rect[float64], clip geom.Rect[int]) {
	src, ok := t.(*Texture)
	if !ok {
		return
	}

	// Scale the full texture into a scratch image the size of dst,
	// then copy only the clipped part into place.
	di := geom.RConv[int](dst)
	if di.Empty() {
		return
	}
	scratch := fimg.NewNABGR(image.Rect(0, 0, di.Dx(), di.Dy()))
	draw.ApproxBiLinear.Scale(scratch, scratch.Bounds(), src.img, src.img.Bounds(), draw.Src, nil)

	visible := di.Intersect(clip).Intersect(fb.geometry)
	if visible.Empty() {
		return
	}

	draw.Copy(
		fb.img,
		visible.Min.Sub(fb.geometry.Min).ImagePoint(),
		scratch,
		visible.Sub(di.Min).ImageRect(),
		draw.Over,
		nil,
	)
}

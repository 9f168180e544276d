// Package fimg provides the non-alpha-premultiplied ABGR image type
// that backs the software framebuffer.
package fimg

import (
	"image"
	"image/color"
)

type NABGR struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

func NewNABGR(r image.Rectangle) *NABGR {
	return &NABGR{
		Pix:    make([]byte, 4*r.Dx()*r.Dy()),
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}

func (p *NABGR) PixOffset(x, y int) int {
	return ((y - p.Rect.Min.Y) * p.Stride) + (x-p.Rect.Min.X)*4
}

func (p *NABGR) Bounds() image.Rectangle {
	return p.Rect
}

func (p *NABGR) ColorModel() color.Model {
	return color.NRGBAModel
}

func (p *NABGR) At(x, y int) color.Color {
	if !image.Pt(x, y).In(p.Rect) {
		return color.NRGBA{}
	}
	i := p.PixOffset(x, y)
	return color.NRGBA{p.Pix[i+3], p.Pix[i+2], p.Pix[i+1], p.Pix[i]}
}

func (p *NABGR) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(p.Rect) {
		return
	}

	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := p.PixOffset(x, y)
	p.Pix[i] = nc.A
	p.Pix[i+1] = nc.B
	p.Pix[i+2] = nc.G
	p.Pix[i+3] = nc.R
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widgets

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ui"
)

// RuleLevel is the grey used for ruled lines.
var RuleLevel = color.Gray{Y: 0x80}

// Line is a horizontal rule across the canvas at row Y.
type Line struct {
	Y int
}

// Fingerprint implements ui.Fragment.
func (l Line) Fingerprint() ui.Fingerprint {
	return ui.NewHasher("line").Int(l.Y).Sum()
}

// Draw implements ui.Fragment.
func (l Line) Draw(c *ui.Canvas) {
	c.Fill(geom.Rect(0, l.Y, c.Size().X, l.Y+1), RuleLevel)
}

// Image is a greyscale picture.
type Image struct {
	img *image.Gray
	fp  ui.Fingerprint
}

// NewImage converts src to greyscale, scaled to size. A zero size keeps
// the source size.
func NewImage(src image.Image, size geom.Point) *Image {
	b := src.Bounds()
	if size.X <= 0 || size.Y <= 0 {
		size = geom.Pt(b.Dx(), b.Dy())
	}
	img := image.NewGray(image.Rect(0, 0, size.X, size.Y))
	if size.X == b.Dx() && size.Y == b.Dy() {
		draw.Draw(img, img.Rect, src, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(img, img.Rect, src, b, draw.Src, nil)
	}
	fp := ui.NewHasher("image").Int(size.X).Int(size.Y).Bytes(img.Pix).Sum()
	return &Image{img: img, fp: fp}
}

// Size returns the image size.
func (i *Image) Size() geom.Point {
	return geom.FromRect(i.img.Rect).Size()
}

// Fingerprint implements ui.Fragment.
func (i *Image) Fingerprint() ui.Fingerprint {
	return i.fp
}

// Draw implements ui.Fragment.
func (i *Image) Draw(c *ui.Canvas) {
	c.DrawImage(geom.Point{}, i.img)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/paper/geom"
)

// Greyscale levels used by the toolkit.
var (
	White = color.Gray{Y: 0xFF}
	Black = color.Gray{Y: 0x00}
	Grey  = color.Gray{Y: 0x80}
)

// Framebuffer is the 8-bit greyscale pixel memory of an e-paper panel.
// Writing to it changes nothing on the glass until the owning Display is
// asked to refresh the affected region.
type Framebuffer struct {
	img *image.Gray
}

// NewFramebuffer creates a white framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{img: image.NewGray(image.Rect(0, 0, width, height))}
	fb.Clear(White)
	return fb
}

// Width returns the width of the framebuffer.
func (fb *Framebuffer) Width() int {
	return fb.img.Rect.Dx()
}

// Height returns the height of the framebuffer.
func (fb *Framebuffer) Height() int {
	return fb.img.Rect.Dy()
}

// Bounds returns the whole framebuffer as a region.
func (fb *Framebuffer) Bounds() geom.Region {
	return geom.FromRect(fb.img.Rect)
}

// Image returns the backing image. Drawing into it bypasses damage
// tracking; callers normally go through ui.Canvas instead.
func (fb *Framebuffer) Image() *image.Gray {
	return fb.img
}

// Sub returns a draw target restricted to r. Writes outside r are
// dropped.
func (fb *Framebuffer) Sub(r geom.Region) *image.Gray {
	return fb.img.SubImage(r.Rect()).(*image.Gray)
}

// SetPixel sets the level of a single pixel. Out-of-range writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.Gray) {
	fb.img.SetGray(x, y, c)
}

// Pixel returns the level of a single pixel.
func (fb *Framebuffer) Pixel(x, y int) color.Gray {
	return fb.img.GrayAt(x, y)
}

// Clear fills the entire framebuffer with a level.
func (fb *Framebuffer) Clear(c color.Gray) {
	fb.Fill(fb.Bounds(), c)
}

// Fill fills r, clipped to the framebuffer, with a level.
func (fb *Framebuffer) Fill(r geom.Region, c color.Gray) {
	draw.Draw(fb.img, r.Rect(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawLine draws a segment of the given width and returns the region it
// may have touched.
func (fb *Framebuffer) DrawLine(from, to geom.Point, width int, c color.Gray) geom.Region {
	return DrawLine(fb.img, from, to, width, c)
}

// DrawLine rasterizes a segment of the given width into dst and returns
// the (unclipped) region it may have touched. The segment is filled as a
// quad around its centre line, so joints between consecutive segments of
// a stroke are covered by the square end caps.
func DrawLine(dst draw.Image, from, to geom.Point, width int, c color.Gray) geom.Region {
	quad, touched := lineQuad(from, to, width)
	size := touched.Size()
	if size.X == 0 || size.Y == 0 {
		return touched
	}

	z := vector.NewRasterizer(size.X, size.Y)
	ox, oy := float64(touched.TopLeft.X), float64(touched.TopLeft.Y)
	z.MoveTo(float32(quad[0][0]-ox), float32(quad[0][1]-oy))
	for _, p := range quad[1:] {
		z.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	z.ClosePath()
	z.DrawOp = draw.Over
	z.Draw(dst, touched.Rect(), image.NewUniform(c), image.Point{})
	return touched
}

// LineExtent returns the region DrawLine touches for the same segment.
func LineExtent(from, to geom.Point, width int) geom.Region {
	_, touched := lineQuad(from, to, width)
	return touched
}

// lineQuad returns the corners of a segment's outline and the pixel
// region covering them.
func lineQuad(from, to geom.Point, width int) ([4][2]float64, geom.Region) {
	if width < 1 {
		width = 1
	}
	half := float64(width) / 2
	x0, y0 := float64(from.X)+0.5, float64(from.Y)+0.5
	x1, y1 := float64(to.X)+0.5, float64(to.Y)+0.5

	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	var ux, uy float64
	if length == 0 {
		ux, uy = 1, 0
	} else {
		ux, uy = dx/length, dy/length
	}
	// Extend by half a width for square caps, offset by the normal.
	x0, y0 = x0-ux*half, y0-uy*half
	x1, y1 = x1+ux*half, y1+uy*half
	nx, ny := -uy*half, ux*half

	quad := [4][2]float64{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range quad {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	return quad, geom.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// DrawImage copies img into r, clipped to the framebuffer.
func (fb *Framebuffer) DrawImage(r geom.Region, img image.Image) {
	draw.Draw(fb.img, r.Rect(), img, img.Bounds().Min, draw.Src)
}

// Snapshot returns a copy of the current framebuffer contents.
func (fb *Framebuffer) Snapshot() *image.Gray {
	c := image.NewGray(fb.img.Rect)
	copy(c.Pix, fb.img.Pix)
	return c
}

// SavePNG saves the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, fb.img)
}

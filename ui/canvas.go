// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/paper/display"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ink"
)

// Canvas is the drawing surface handed out by Frame.Canvas. It is
// clipped to the frame's area and uses coordinates relative to the
// frame's top-left corner. The area starts out white.
type Canvas struct {
	fb          *display.Framebuffer
	bounds      geom.Region
	strokeWidth int
}

// Bounds returns the absolute screen region of the canvas.
func (c *Canvas) Bounds() geom.Region {
	return c.bounds
}

// Size returns the canvas size.
func (c *Canvas) Size() geom.Point {
	return c.bounds.Size()
}

// Image returns a draw.Image over the canvas area. Its coordinates are
// absolute screen coordinates; use Bounds().Rect().Min as the origin.
func (c *Canvas) Image() draw.Image {
	return c.fb.Sub(c.bounds)
}

func (c *Canvas) abs(p geom.Point) geom.Point {
	return p.Add(c.bounds.TopLeft)
}

// Set sets one pixel.
func (c *Canvas) Set(p geom.Point, level color.Gray) {
	if !geom.RegionOf(geom.Point{}, c.Size()).Contains(p) {
		return
	}
	q := c.abs(p)
	c.fb.SetPixel(q.X, q.Y, level)
}

// Fill fills r, clipped to the canvas.
func (c *Canvas) Fill(r geom.Region, level color.Gray) {
	clipped, ok := r.Translate(c.bounds.TopLeft).Intersect(c.bounds)
	if !ok {
		return
	}
	c.fb.Fill(clipped, level)
}

// DrawLine draws a segment of the given width.
func (c *Canvas) DrawLine(from, to geom.Point, width int, level color.Gray) {
	display.DrawLine(c.fb.Sub(c.bounds), c.abs(from), c.abs(to), width, level)
}

// DrawInk draws every stroke of k in black at the screen's stroke width.
func (c *Canvas) DrawInk(k *ink.Ink) {
	drawInk(c.fb.Sub(c.bounds), k, geom.Point{}.Add(c.bounds.TopLeft), c.strokeWidth)
}

// DrawImage draws img with its bounds' minimum at p, clipped to the canvas.
func (c *Canvas) DrawImage(p geom.Point, img image.Image) {
	dst := c.fb.Sub(c.bounds)
	r := img.Bounds().Sub(img.Bounds().Min).Add(c.abs(p).Image())
	draw.Draw(dst, r, img, img.Bounds().Min, draw.Src)
}

// drawInk draws k offset by origin into dst.
func drawInk(dst draw.Image, k *ink.Ink, origin geom.Point, width int) {
	inkSegments(k, origin, func(from, to geom.Point) {
		display.DrawLine(dst, from, to, width, display.Black)
	})
}

// inkExtent returns the region drawInk touches for k, and false for
// empty ink.
func inkExtent(k *ink.Ink, width int) (geom.Region, bool) {
	var (
		extent geom.Region
		found  bool
	)
	inkSegments(k, geom.Point{}, func(from, to geom.Point) {
		r := display.LineExtent(from, to, width)
		if !found {
			extent, found = r, true
			return
		}
		extent = extent.Union(r)
	})
	return extent, found
}

// inkSegments calls fn for every segment of k's strokes, offset by
// origin. A single-point stroke is a zero-length segment.
func inkSegments(k *ink.Ink, origin geom.Point, fn func(from, to geom.Point)) {
	for _, stroke := range k.Strokes() {
		if len(stroke) == 0 {
			continue
		}
		prev := geom.Pt(int(stroke[0].X), int(stroke[0].Y)).Add(origin)
		if len(stroke) == 1 {
			fn(prev, prev)
			continue
		}
		for _, p := range stroke[1:] {
			next := geom.Pt(int(p.X), int(p.Y)).Add(origin)
			fn(prev, next)
			prev = next
		}
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"image"
)

// Region is an axis-aligned integer rectangle. TopLeft is inclusive and
// BottomRight exclusive, and TopLeft <= BottomRight componentwise.
//
// The zero Region is the empty region at the origin.
type Region struct {
	TopLeft     Point
	BottomRight Point
}

// NewRegion creates a region from its corners.
// It panics if topLeft is not <= bottomRight componentwise.
func NewRegion(topLeft, bottomRight Point) Region {
	if !topLeft.In(bottomRight) {
		panic(fmt.Sprintf("geom: invalid region: %v is not <= %v", topLeft, bottomRight))
	}
	return Region{TopLeft: topLeft, BottomRight: bottomRight}
}

// Rect is shorthand for NewRegion(Pt(x0, y0), Pt(x1, y1)).
func Rect(x0, y0, x1, y1 int) Region {
	return NewRegion(Pt(x0, y0), Pt(x1, y1))
}

// RegionOf creates the region with the given origin and size.
func RegionOf(origin, size Point) Region {
	return NewRegion(origin, origin.Add(size))
}

// FromRect converts a canonical image.Rectangle to a Region.
func FromRect(r image.Rectangle) Region {
	r = r.Canon()
	return Region{TopLeft: Pt(r.Min.X, r.Min.Y), BottomRight: Pt(r.Max.X, r.Max.Y)}
}

// Size returns the width and height of the region.
func (r Region) Size() Point {
	return r.BottomRight.Sub(r.TopLeft)
}

// Area returns the number of pixels in the region.
func (r Region) Area() int {
	s := r.Size()
	return s.X * s.Y
}

// Empty reports whether the region contains no pixels.
func (r Region) Empty() bool {
	return r.TopLeft.X >= r.BottomRight.X || r.TopLeft.Y >= r.BottomRight.Y
}

// Translate returns the region moved by v.
func (r Region) Translate(v Point) Region {
	return Region{TopLeft: r.TopLeft.Add(v), BottomRight: r.BottomRight.Add(v)}
}

// Split returns the part of r on the given side of the cut at coordinate
// value. The cut is an x coordinate for Left/Right and a y coordinate for
// Top/Bottom. A cut beyond the far edge is clamped, so the whole region is
// returned; a cut before the near edge leaves nothing on that side and
// Split reports false.
//
// For any value where both are defined, r.Split(s, v) and
// r.Split(s.Opposite(), v) partition r.
func (r Region) Split(side Side, value int) (Region, bool) {
	tl, br := r.TopLeft, r.BottomRight
	switch side {
	case Left:
		if value < tl.X {
			return Region{}, false
		}
		return Region{TopLeft: tl, BottomRight: Pt(min(value, br.X), br.Y)}, true
	case Right:
		if value > br.X {
			return Region{}, false
		}
		return Region{TopLeft: Pt(max(value, tl.X), tl.Y), BottomRight: br}, true
	case Top:
		if value < tl.Y {
			return Region{}, false
		}
		return Region{TopLeft: tl, BottomRight: Pt(br.X, min(value, br.Y))}, true
	default:
		if value > br.Y {
			return Region{}, false
		}
		return Region{TopLeft: Pt(tl.X, max(value, tl.Y)), BottomRight: br}, true
	}
}

// Contains reports whether p lies in the region. The test is half-open:
// TopLeft <= p < BottomRight.
func (r Region) Contains(p Point) bool {
	return r.TopLeft.X <= p.X && p.X < r.BottomRight.X &&
		r.TopLeft.Y <= p.Y && p.Y < r.BottomRight.Y
}

// Intersect returns the pixels shared by r and o.
// It reports false iff the two regions share no pixel.
func (r Region) Intersect(o Region) (Region, bool) {
	if o.BottomRight.X <= r.TopLeft.X || r.BottomRight.X <= o.TopLeft.X ||
		o.BottomRight.Y <= r.TopLeft.Y || r.BottomRight.Y <= o.TopLeft.Y {
		return Region{}, false
	}
	return Region{
		TopLeft:     Pt(max(r.TopLeft.X, o.TopLeft.X), max(r.TopLeft.Y, o.TopLeft.Y)),
		BottomRight: Pt(min(r.BottomRight.X, o.BottomRight.X), min(r.BottomRight.Y, o.BottomRight.Y)),
	}, true
}

// Union returns the smallest region containing both r and o.
func (r Region) Union(o Region) Region {
	return Region{
		TopLeft:     Pt(min(r.TopLeft.X, o.TopLeft.X), min(r.TopLeft.Y, o.TopLeft.Y)),
		BottomRight: Pt(max(r.BottomRight.X, o.BottomRight.X), max(r.BottomRight.Y, o.BottomRight.Y)),
	}
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.TopLeft.X, r.TopLeft.Y, r.BottomRight.X, r.BottomRight.Y)
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d]-[%d,%d]", r.TopLeft.X, r.TopLeft.Y, r.BottomRight.X, r.BottomRight.Y)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"math"

	"github.com/gogpu/paper/geom"
)

// SwipeLength is the minimum touch length, in pixels, for a swipe.
// Shorter touches are taps.
const SwipeLength = 100

// Pos is a sub-pixel position in device space.
type Pos struct {
	X, Y float32
}

// Point rounds the position down to a device pixel.
func (p Pos) Point() geom.Point {
	return geom.Pt(int(math.Floor(float64(p.X))), int(math.Floor(float64(p.Y))))
}

// Touch is a single finger contact from press to release.
type Touch struct {
	Start, End Pos
}

// Length returns the distance travelled between press and release.
func (t Touch) Length() float32 {
	return float32(math.Hypot(float64(t.End.X-t.Start.X), float64(t.End.Y-t.Start.Y)))
}

// Midpoint returns the point halfway between press and release.
func (t Touch) Midpoint() Pos {
	return Pos{X: (t.Start.X + t.End.X) / 2, Y: (t.Start.Y + t.End.Y) / 2}
}

// Translate returns the touch moved by (dx, dy).
func (t Touch) Translate(dx, dy float32) Touch {
	return Touch{
		Start: Pos{X: t.Start.X + dx, Y: t.Start.Y + dy},
		End:   Pos{X: t.End.X + dx, Y: t.End.Y + dy},
	}
}

// IsTap reports whether the touch is short enough to count as a tap.
func (t Touch) IsTap() bool {
	return t.Length() < SwipeLength
}

// Swipe returns the direction of a long, mostly axis-aligned touch.
func (t Touch) Swipe() (geom.Side, bool) {
	if t.Length() < SwipeLength {
		return 0, false
	}
	dx, dy := t.End.X-t.Start.X, t.End.Y-t.Start.Y
	ax, ay := float32(math.Abs(float64(dx))), float32(math.Abs(float64(dy)))
	switch {
	case ax > 4*ay:
		if dx > 0 {
			return geom.Right, true
		}
		return geom.Left, true
	case ay > 4*ax:
		if dy > 0 {
			return geom.Bottom, true
		}
		return geom.Top, true
	default:
		return 0, false
	}
}

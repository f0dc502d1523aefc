// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

// Side names the edge of a region that a cut is measured from.
type Side uint8

const (
	// Left cuts off the area left of a vertical line.
	Left Side = iota
	// Right cuts off the area right of a vertical line.
	Right
	// Top cuts off the area above a horizontal line.
	Top
	// Bottom cuts off the area below a horizontal line.
	Bottom
)

// Opposite returns the side facing s. Opposite is an involution.
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	default:
		return Top
	}
}

// Horizontal reports whether s cuts along the x axis (Left or Right).
func (s Side) Horizontal() bool {
	return s == Left || s == Right
}

// Extent returns the component of size measured along s.
func (s Side) Extent(size Point) int {
	if s.Horizontal() {
		return size.X
	}
	return size.Y
}

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		return "Side(?)"
	}
}

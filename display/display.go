// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"errors"

	"github.com/gogpu/paper/geom"
)

// ErrClosed is returned by operations on a closed display.
var ErrClosed = errors.New("display: closed")

// RefreshMode selects the physical waveform used to push framebuffer
// contents to the panel.
type RefreshMode uint8

const (
	// Full flashes the whole panel to remove ghosting. Slow; used on
	// session start and section changes.
	Full RefreshMode = iota
	// Partial is a greyscale region refresh suitable for text and images.
	Partial
	// Quick is a fast monochrome refresh for live pen strokes.
	Quick
)

func (m RefreshMode) String() string {
	switch m {
	case Full:
		return "full"
	case Partial:
		return "partial"
	case Quick:
		return "quick"
	default:
		return "unknown"
	}
}

// Display is an e-paper panel: a framebuffer plus the refresh operations
// that make its contents visible.
//
// Refresh must be a no-op for an empty region. A Display is used from the
// event-loop goroutine only.
type Display interface {
	// Size returns the panel size in device pixels.
	Size() geom.Point

	// Framebuffer returns the pixel memory backing the panel.
	Framebuffer() *Framebuffer

	// Refresh pushes the framebuffer contents inside r to the panel
	// using the given mode. An error means the panel and the framebuffer
	// may no longer agree; callers treat it as fatal.
	Refresh(r geom.Region, mode RefreshMode) error

	// Close releases the panel.
	Close() error
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"fmt"
	"image"

	"github.com/gogpu/paper"
	"github.com/gogpu/paper/geom"
)

// RefreshCall records a single Refresh on a Memory display.
type RefreshCall struct {
	Region geom.Region
	Mode   RefreshMode
}

// Memory is a Display that keeps the panel contents in memory and records
// every refresh. It is used for tests and headless rendering.
//
// Example:
//
//	d := display.NewMemory(1404, 1872)
//	screen := ui.NewScreen(d)
//	...
//	img := d.Panel() // what the glass shows
type Memory struct {
	fb     *Framebuffer
	panel  *image.Gray
	calls  []RefreshCall
	fail   error
	closed bool
}

// NewMemory creates an in-memory display with the given dimensions.
func NewMemory(width, height int) *Memory {
	fb := NewFramebuffer(width, height)
	return &Memory{
		fb:    fb,
		panel: fb.Snapshot(),
	}
}

// Size returns the panel size.
func (m *Memory) Size() geom.Point {
	return geom.Pt(m.fb.Width(), m.fb.Height())
}

// Framebuffer returns the pixel memory.
func (m *Memory) Framebuffer() *Framebuffer {
	return m.fb
}

// Refresh copies the framebuffer inside r to the simulated panel.
func (m *Memory) Refresh(r geom.Region, mode RefreshMode) error {
	if m.closed {
		return ErrClosed
	}
	if m.fail != nil {
		return fmt.Errorf("display: %s refresh of %v: %w", mode, r, m.fail)
	}
	clipped, ok := r.Intersect(m.fb.Bounds())
	if !ok {
		return nil
	}
	src := m.fb.Image()
	for y := clipped.TopLeft.Y; y < clipped.BottomRight.Y; y++ {
		lo := src.PixOffset(clipped.TopLeft.X, y)
		hi := src.PixOffset(clipped.BottomRight.X, y)
		copy(m.panel.Pix[lo:hi], src.Pix[lo:hi])
	}
	m.calls = append(m.calls, RefreshCall{Region: clipped, Mode: mode})
	paper.Logger().Debug("display: refresh", "region", clipped, "mode", mode)
	return nil
}

// Close marks the display closed. Close is idempotent.
func (m *Memory) Close() error {
	m.closed = true
	return nil
}

// Calls returns the refreshes recorded since the last Reset.
func (m *Memory) Calls() []RefreshCall {
	return m.calls
}

// Reset forgets the recorded refreshes.
func (m *Memory) Reset() {
	m.calls = m.calls[:0]
}

// Panel returns what the simulated glass currently shows.
func (m *Memory) Panel() *image.Gray {
	return m.panel
}

// FailWith makes every later Refresh fail with err. Pass nil to recover.
func (m *Memory) FailWith(err error) {
	m.fail = err
}

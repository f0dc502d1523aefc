// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"errors"
	"fmt"

	"github.com/gogpu/paper"
	"github.com/gogpu/paper/display"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ink"
)

// ErrNoConvergence is returned by Render when annotations and content
// keep invalidating each other beyond the fixup limit.
var ErrNoConvergence = errors.New("ui: render did not converge")

// Report describes what a Render call did.
type Report struct {
	// Passes is the number of render passes run.
	Passes int
	// Draws is the number of canvases handed out.
	Draws int
	// Invalidated lists the regions of removed annotations whose
	// content was redrawn.
	Invalidated []geom.Region
	// Removed counts annotations dropped because no widget registered them.
	Removed int
	// Redrawn counts annotations drawn again after content overwrote them.
	Redrawn int
	// Nodes is the size of the content tree after the last pass.
	Nodes int
}

// Screen owns the framebuffer of a display together with the content
// tree and the annotation set that describe it. It is not safe for
// concurrent use.
type Screen struct {
	display     display.Display
	fb          *display.Framebuffer
	opts        options
	tree        *node
	annotations annotations
	dirty       damage
	fullPending bool
	seq         Sequence
	draws       int
	rendering   bool
}

// NewScreen returns a screen drawing to d. The content tree starts out
// invalid, so the first render draws everything.
func NewScreen(d display.Display, opts ...Option) *Screen {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Screen{
		display:     d,
		fb:          d.Framebuffer(),
		opts:        o,
		tree:        newNode(),
		fullPending: o.fullRefreshNow,
	}
}

// Size returns the screen size in pixels.
func (s *Screen) Size() geom.Point {
	return s.fb.Bounds().Size()
}

// Bounds returns the screen region.
func (s *Screen) Bounds() geom.Region {
	return s.fb.Bounds()
}

// Framebuffer returns the framebuffer the screen draws to.
func (s *Screen) Framebuffer() *display.Framebuffer {
	return s.fb
}

// StrokeWidth returns the configured stroke width.
func (s *Screen) StrokeWidth() int {
	return s.opts.strokeWidth
}

// InkExtent returns the region that drawing k as live strokes touches,
// clipped to the screen.
func (s *Screen) InkExtent(k *ink.Ink) (geom.Region, bool) {
	extent, ok := inkExtent(k, s.opts.strokeWidth)
	if !ok {
		return geom.Region{}, false
	}
	return extent.Intersect(s.Bounds())
}

func (s *Screen) nextSeq() Sequence {
	s.seq++
	return s.seq
}

func (s *Screen) markDirty(r geom.Region) {
	s.dirty.add(r)
}

// Render runs render passes until the annotations agree with the content
// tree. Each pass calls fn with a frame covering the whole screen; the
// frame is ended when fn returns. fn must draw the same thing for the
// same application state, since it may be called more than once.
//
// Render only updates the framebuffer. Call RefreshChanges to push the
// result to the panel.
func (s *Screen) Render(fn func(*Frame)) (Report, error) {
	if s.rendering {
		panic("ui: Screen.Render called during a render pass")
	}
	s.rendering = true
	defer func() { s.rendering = false }()

	var report Report
	start := s.draws
	for report.Passes < s.opts.fixupLimit {
		report.Passes++
		s.annotations.beginPass()

		root := &Frame{screen: s, bounds: s.Bounds(), node: s.tree, content: NoContent}
		fn(root)
		root.End()

		if !s.annotations.fixup(s, &report) {
			report.Draws = s.draws - start
			report.Nodes = s.tree.size()
			return report, nil
		}
	}
	report.Draws = s.draws - start
	report.Nodes = s.tree.size()
	paper.Logger().Warn("ui: render did not converge", "passes", report.Passes, "nodes", report.Nodes)
	return report, fmt.Errorf("%w after %d passes", ErrNoConvergence, report.Passes)
}

// Invalidate forces everything overlapping r to be redrawn on the next
// render pass.
func (s *Screen) Invalidate(r geom.Region) {
	clipped, ok := r.Intersect(s.Bounds())
	if !ok {
		return
	}
	s.tree.invalidate(clipped)
}

// Pending returns the region changed on the framebuffer since the last
// refresh.
func (s *Screen) Pending() (geom.Region, bool) {
	return s.dirty.peek()
}

// RequestFullRefresh makes the next RefreshChanges do a full refresh of
// the panel, clearing ghosting left by partial updates.
func (s *Screen) RequestFullRefresh() {
	s.fullPending = true
}

// RefreshChanges pushes pending changes to the panel: a single partial
// refresh of the union of everything changed, or a full refresh if one
// was requested.
func (s *Screen) RefreshChanges() error {
	r, ok := s.dirty.take()
	if s.fullPending {
		s.fullPending = false
		return s.refresh(s.Bounds(), display.Full)
	}
	if !ok {
		return nil
	}
	return s.refresh(r, display.Partial)
}

// Clear blanks the panel with a full refresh and forgets everything
// drawn, so the next render draws from scratch.
func (s *Screen) Clear() error {
	s.fb.Clear(display.White)
	s.tree = newNode()
	s.annotations.reset()
	s.dirty = damage{}
	s.fullPending = false
	return s.refresh(s.Bounds(), display.Full)
}

// Stroke draws a live pen segment straight to the framebuffer and panel
// with a quick refresh. The content tree is not told; invalidate the
// ink's region once the stroke is complete.
func (s *Screen) Stroke(from, to geom.Point) error {
	touched := s.fb.DrawLine(from, to, s.opts.strokeWidth, display.Black)
	r, ok := touched.Intersect(s.Bounds())
	if !ok {
		return nil
	}
	return s.refresh(r, display.Quick)
}

func (s *Screen) refresh(r geom.Region, mode display.RefreshMode) error {
	if err := s.display.Refresh(r, mode); err != nil {
		return fmt.Errorf("ui: %s refresh of %s: %w", mode, r, err)
	}
	return nil
}
